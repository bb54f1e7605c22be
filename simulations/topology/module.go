// Package topology derives the generation count from the Betti numbers of
// the compactification manifold.
package topology

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
		Name:   "topology",
		Title:  "Betti numbers and generation count",
		Sector: "topology",
	}
}

func (s *Simulation) Run(ctx context.Context) (*sim.Result, error) {
	logger := ctxlog.FromContext(ctx)

	b2 := model.NumberFromInt(4)
	b3 := model.NumberFromInt(24)
	nGen := b3.Quo(model.NumberFromInt(8))
	logger.Debug("Topology invariants computed.", "b2", b2.String(), "b3", b3.String(), "n_gen", nGen.String())

	return &sim.Result{
		Formulas: []model.Formula{
			{
				Name:       "generation_count",
				Expression: "n_gen = b3 / 8",
				Label:      "eq:generation-count",
				Produces:   []string{"topology.n_gen"},
			},
		},
		Parameters: []model.Parameter{
			{
				Path:       "topology.b2",
				Value:      b2,
				Status:     model.StatusEstablished,
				Provenance: "second Betti number of the compactification manifold",
			},
			{
				Path:       "topology.b3",
				Value:      b3,
				Status:     model.StatusEstablished,
				Provenance: "third Betti number of the compactification manifold",
			},
			{
				Path:       "topology.n_gen",
				Value:      nGen,
				Status:     model.StatusDerived,
				Provenance: "generation_count: n_gen = b3 / 8",
				Unit:       "generations",
			},
		},
		Content: []sim.Section{
			{
				Heading: "Generation count",
				Body:    "Three fermion generations follow from b3 = 24 without free inputs.",
			},
		},
	}, nil
}
