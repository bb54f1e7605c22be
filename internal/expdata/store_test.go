package expdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
)

const codataDoc = `{
  "em": {
    "parameters": {
      "alpha_inv": {"value": 137.036, "uncertainty": 0.000001, "source": "CODATA 2022"},
      "alpha_em": {"value": 7.2973525693e-3}
    },
    "correlation_matrix": {"alpha_inv": [1.0]}
  },
  "weak": {
    "parameters": {
      "sin2_theta_w": {"value": 0.23121, "uncertainty": 4e-5, "bound_type": "DERIVED"}
    }
  }
}`

func newTestStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return NewStore(dir)
}

func TestStore_LoadAndGet(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, map[string]string{"codata_2022.json": codataDoc})
	require.NoError(t, store.Load(context.Background(), "codata_2022.json"))

	got, err := store.Get("codata_2022.json", "em.parameters.alpha_inv")
	require.NoError(t, err)
	assert.True(t, got.Value.Equal(model.MustNumber("137.036")))
	assert.True(t, got.Uncertainty.Equal(model.MustNumber("0.000001")))
	assert.Equal(t, "CODATA 2022", got.Source)
	assert.Equal(t, BoundMeasured, got.BoundType)

	got, err = store.Get("codata_2022.json", "weak.parameters.sin2_theta_w")
	require.NoError(t, err)
	assert.True(t, got.Value.Equal(model.MustNumber("0.23121")))
	assert.Equal(t, BoundDerived, got.BoundType)
}

func TestStore_Get_AbsentUncertaintyStaysZero(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, map[string]string{"codata_2022.json": codataDoc})
	require.NoError(t, store.Load(context.Background(), "codata_2022.json"))

	got, err := store.Get("codata_2022.json", "em.parameters.alpha_em")
	require.NoError(t, err)
	assert.True(t, got.Uncertainty.IsZero())
}

func TestStore_Get_UnloadedFileFails(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, nil)

	_, err := store.Get("codata_2022.json", "em.parameters.alpha_inv")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStore_Get_UnresolvablePaths(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, map[string]string{"codata_2022.json": codataDoc})
	require.NoError(t, store.Load(context.Background(), "codata_2022.json"))

	testCases := []struct {
		name string
		path string
	}{
		{name: "unknown leaf", path: "em.parameters.missing"},
		{name: "unknown section", path: "qcd.parameters.alpha_s"},
		{name: "segment into a scalar", path: "em.parameters.alpha_inv.value.deeper"},
		{name: "object without a value field", path: "em.parameters"},
		{name: "section object", path: "em"},
		{name: "opaque sibling structure", path: "em.correlation_matrix"},
		{name: "empty path", path: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := store.Get("codata_2022.json", tc.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrNotFound)
		})
	}
}

func TestStore_Load_Idempotent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "codata_2022.json")
	require.NoError(t, os.WriteFile(path, []byte(codataDoc), 0o644))
	store := NewStore(dir)
	require.NoError(t, store.Load(context.Background(), "codata_2022.json"))

	// Corrupting the file after the first load must not matter: the cached
	// document is served and the file is never re-read.
	require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0o644))
	require.NoError(t, store.Load(context.Background(), "codata_2022.json"))

	got, err := store.Get("codata_2022.json", "em.parameters.alpha_inv")
	require.NoError(t, err)
	assert.True(t, got.Value.Equal(model.MustNumber("137.036")))
	assert.Equal(t, []string{"codata_2022.json"}, store.Loaded())
}

func TestStore_Load_MalformedDocuments(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		content string
	}{
		{name: "syntax error", content: `{ not json`},
		{name: "null root", content: `null`},
		{name: "array root", content: `[1, 2]`},
		{name: "scalar root", content: `42`},
		{name: "parameters not an object", content: `{"em": {"parameters": [1]}}`},
		{name: "entry not an object", content: `{"em": {"parameters": {"alpha_inv": 137.036}}}`},
		{name: "missing value", content: `{"em": {"parameters": {"alpha_inv": {"uncertainty": 1}}}}`},
		{name: "non-numeric value", content: `{"em": {"parameters": {"alpha_inv": {"value": "137"}}}}`},
		{name: "non-numeric uncertainty", content: `{"em": {"parameters": {"alpha_inv": {"value": 137.036, "uncertainty": "tiny"}}}}`},
		{name: "non-string source", content: `{"em": {"parameters": {"alpha_inv": {"value": 137.036, "source": 7}}}}`},
		{name: "unknown bound type", content: `{"em": {"parameters": {"alpha_inv": {"value": 137.036, "bound_type": "GUESSED"}}}}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := newTestStore(t, map[string]string{"bad.json": tc.content})

			err := store.Load(context.Background(), "bad.json")

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrDataFormat)
			assert.Empty(t, store.Loaded())
		})
	}
}

func TestStore_Load_MissingFile(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, nil)

	err := store.Load(context.Background(), "absent.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_Loaded_PreservesLoadOrder(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, map[string]string{
		"pdg_2024.json":    `{"weak": {"parameters": {"mz": {"value": 91.1876, "uncertainty": 0.0021}}}}`,
		"codata_2022.json": codataDoc,
	})
	ctx := context.Background()

	require.NoError(t, store.Load(ctx, "pdg_2024.json"))
	require.NoError(t, store.Load(ctx, "codata_2022.json"))
	require.NoError(t, store.Load(ctx, "pdg_2024.json"))

	assert.Equal(t, []string{"pdg_2024.json", "codata_2022.json"}, store.Loaded())
}
