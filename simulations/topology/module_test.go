package topology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
)

func TestRunDerivesExactlyThreeGenerations(t *testing.T) {
	t.Parallel()

	s := &Simulation{}
	res, err := s.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	byPath := map[string]model.Parameter{}
	for _, p := range res.Parameters {
		require.NoError(t, p.Validate())
		byPath[p.Path] = p
	}

	nGen, ok := byPath["topology.n_gen"]
	require.True(t, ok, "the run must produce topology.n_gen")
	assert.True(t, nGen.Value.Equal(model.NumberFromInt(3)),
		"b3/8 must be exactly 3, got %s", nGen.Value)
	assert.Equal(t, model.StatusDerived, nGen.Status)

	assert.True(t, byPath["topology.b3"].Value.Equal(model.NumberFromInt(24)))
	assert.Equal(t, model.StatusEstablished, byPath["topology.b2"].Status)
	assert.Equal(t, model.StatusEstablished, byPath["topology.b3"].Status)
}

func TestFormulasOnlyClaimProducedParameters(t *testing.T) {
	t.Parallel()

	s := &Simulation{}
	meta := s.Metadata()
	assert.Equal(t, "topology", meta.Name)
	assert.Equal(t, "topology", meta.Sector)

	res, err := s.Run(context.Background())
	require.NoError(t, err)

	paths := map[string]bool{}
	for _, p := range res.Parameters {
		paths[p.Path] = true
	}
	for _, f := range res.Formulas {
		require.NoError(t, f.Validate())
		for _, produced := range f.Produces {
			assert.True(t, paths[produced],
				"formula %s claims %s but the run never registers it", f.Name, produced)
		}
	}
}
