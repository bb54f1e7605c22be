package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/registry"
)

func TestRunner_RunAll_MergesResultsInOrder(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	topology := &stubAdapter{
		meta: Metadata{Name: "topology", Title: "Topology counts", Sector: "topology"},
		res: &Result{
			Formulas: []model.Formula{{
				Name:     "generation_count",
				Produces: []string{"topology.n_gen"},
			}},
			Parameters: []model.Parameter{{
				Path:       "topology.n_gen",
				Value:      model.MustNumber("3"),
				Status:     model.StatusDerived,
				Provenance: "n_gen = b3 / 8",
			}},
			Content: []Section{{Heading: "Generations", Body: "three of them"}},
		},
	}
	gauge := &stubAdapter{
		meta: Metadata{Name: "gauge", Sector: "gauge"},
		res: &Result{
			Parameters: []model.Parameter{{
				Path:       "electromagnetic.alpha_inv",
				Value:      model.MustNumber("137.035999"),
				Status:     model.StatusDerived,
				Provenance: "gauge ladder",
				Sector:     "electromagnetic",
			}},
		},
	}

	outcomes, err := NewRunner(reg).RunAll(context.Background(), []Adapter{topology, gauge})

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, Outcome{
		Name: "topology", Title: "Topology counts", Sector: "topology",
		Formulas: 1, Parameters: 1, Sections: 1,
	}, outcomes[0])
	assert.Equal(t, 1, topology.runs)

	// Sector fallback: topology.n_gen carried none and inherits the
	// simulation's; the gauge parameter keeps its own.
	nGen, err := reg.GetParam("topology.n_gen")
	require.NoError(t, err)
	assert.Equal(t, "topology", nGen.Sector)

	alphaInv, err := reg.GetParam("electromagnetic.alpha_inv")
	require.NoError(t, err)
	assert.Equal(t, "electromagnetic", alphaInv.Sector)

	assert.True(t, reg.HasFormula("generation_count"))
}

func TestRunner_RunAll_ContainsFailuresAndPanics(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	failing := &stubAdapter{
		meta: Metadata{Name: "electroweak"},
		err:  errors.New("mixing angle diverged"),
	}
	panicking := &stubAdapter{
		meta:     Metadata{Name: "cosmology"},
		panicMsg: "index out of range",
	}
	healthy := &stubAdapter{
		meta: Metadata{Name: "gauge", Sector: "gauge"},
		res: &Result{
			Parameters: []model.Parameter{{
				Path:       "electromagnetic.alpha_inv",
				Value:      model.MustNumber("137.035999"),
				Status:     model.StatusDerived,
				Provenance: "gauge ladder",
			}},
		},
	}

	outcomes, err := NewRunner(reg).RunAll(context.Background(), []Adapter{failing, panicking, healthy})

	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	require.Error(t, outcomes[0].Err)
	assert.Contains(t, outcomes[0].Err.Error(), "mixing angle diverged")

	require.Error(t, outcomes[1].Err)
	assert.Contains(t, outcomes[1].Err.Error(), "simulation panicked | index out of range")

	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, 1, healthy.runs, "a failing predecessor must not stop later simulations")

	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.HasParam("electromagnetic.alpha_inv"))
}

func TestRunner_RunAll_RegistryRejectionIsFatal(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	malformed := &stubAdapter{
		meta: Metadata{Name: "gauge"},
		res: &Result{
			Parameters: []model.Parameter{{
				Path:       "electromagnetic..alpha_inv",
				Value:      model.MustNumber("137.035999"),
				Status:     model.StatusDerived,
				Provenance: "gauge ladder",
			}},
		},
	}
	never := namedStub("cosmology")

	_, err := NewRunner(reg).RunAll(context.Background(), []Adapter{malformed, never})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSchema)
	assert.Contains(t, err.Error(), "simulation gauge")
	assert.Equal(t, 0, never.runs, "a fatal rejection must abort the remaining simulations")
}

func TestRunner_RunAll_DuplicateFormulaIsFatal(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	formula := model.Formula{Name: "generation_count"}
	first := &stubAdapter{
		meta: Metadata{Name: "topology"},
		res:  &Result{Formulas: []model.Formula{formula}},
	}
	second := &stubAdapter{
		meta: Metadata{Name: "gauge"},
		res:  &Result{Formulas: []model.Formula{formula}},
	}

	_, err := NewRunner(reg).RunAll(context.Background(), []Adapter{first, second})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicate)
	assert.Contains(t, err.Error(), "simulation gauge")
}

func TestApply_NilResultIsNoOp(t *testing.T) {
	t.Parallel()
	reg := registry.New()

	require.NoError(t, Apply(reg, Metadata{Name: "gauge"}, nil))
	assert.Equal(t, 0, reg.Len())
}
