package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
)

const fullManifest = `
experiment "codata_2022" {
  file   = "data/codata_2022.json"
  source = "CODATA 2022"
}

experiment "planck_2018" {
  file = "data/planck_2018.json"
}

simulation "topology" {}
simulation "gauge" {}

check "alpha_inv" {
  sector     = "electromagnetic"
  parameter  = "electromagnetic.alpha_inv"
  experiment = "codata_2022"
  path       = "em.parameters.alpha_inv"
}

check "n_s" {
  sector     = "cosmology"
  parameter  = "cosmology.n_s"
  experiment = "planck_2018"
  path       = "cosmology.parameters.n_s"
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "validation.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullManifest(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, fullManifest)

	m, err := Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{path}, m.Paths)
	assert.Equal(t, []Experiment{
		{Label: "codata_2022", File: "data/codata_2022.json", Source: "CODATA 2022"},
		{Label: "planck_2018", File: "data/planck_2018.json"},
	}, m.Experiments)
	assert.Equal(t, []string{"topology", "gauge"}, m.Simulations)

	require.Len(t, m.Checks, 2)
	assert.Equal(t, Check{
		Name:       "alpha_inv",
		Sector:     "electromagnetic",
		Parameter:  "electromagnetic.alpha_inv",
		Experiment: "codata_2022",
		Path:       "em.parameters.alpha_inv",
		File:       "data/codata_2022.json",
		Source:     "CODATA 2022",
	}, m.Checks[0])
	assert.Equal(t, "n_s", m.Checks[1].Name)
	assert.Equal(t, "data/planck_2018.json", m.Checks[1].File)
	assert.Empty(t, m.Checks[1].Source)
}

func TestLoad_DirectoryMergesLexically(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20_checks.hcl"), []byte(`
check "alpha_inv" {
  parameter  = "electromagnetic.alpha_inv"
  experiment = "codata_2022"
  path       = "em.parameters.alpha_inv"
}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "10_sources.hcl"), []byte(`
experiment "codata_2022" {
  file = "data/codata_2022.json"
}
simulation "gauge" {}
`), 0o644))

	m, err := Load(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "10_sources.hcl"),
		filepath.Join(dir, "20_checks.hcl"),
	}, m.Paths)
	require.Len(t, m.Checks, 1)
	assert.Equal(t, "data/codata_2022.json", m.Checks[0].File)
	assert.Equal(t, []string{"gauge"}, m.Simulations)
}

func TestLoad_EmptyDirectoryGivesEmptyManifest(t *testing.T) {
	t.Parallel()
	m, err := Load(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, m.Paths)
	assert.Empty(t, m.Checks)
}

func TestLoad_PathErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	notHCL := filepath.Join(dir, "manifest.json")
	require.NoError(t, os.WriteFile(notHCL, []byte("{}"), 0o644))

	testCases := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{name: "missing path", path: filepath.Join(dir, "absent.hcl"), wantMsg: "manifest path not found"},
		{name: "wrong extension", path: notHCL, wantMsg: "not an .hcl file"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(context.Background(), tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoad_ParseAndDecodeErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "syntax error",
			content: `experiment "x" {`,
			wantMsg: "failed to parse HCL file",
		},
		{
			name:    "missing required attribute",
			content: `check "alpha_inv" { parameter = "a.b" }`,
			wantMsg: "failed to decode HCL file",
		},
		{
			name:    "missing block label",
			content: `experiment { file = "x.json" }`,
			wantMsg: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(context.Background(), writeManifest(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoad_VerifyErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name: "duplicate experiment",
			content: `
experiment "codata_2022" { file = "a.json" }
experiment "codata_2022" { file = "b.json" }
`,
			wantMsg: `duplicate experiment "codata_2022"`,
		},
		{
			name: "empty experiment file",
			content: `
experiment "codata_2022" { file = "" }
`,
			wantMsg: "file must not be empty",
		},
		{
			name: "duplicate simulation",
			content: `
simulation "gauge" {}
simulation "gauge" {}
`,
			wantMsg: `duplicate simulation "gauge"`,
		},
		{
			name: "duplicate check",
			content: `
experiment "codata_2022" { file = "a.json" }
check "alpha_inv" {
  parameter  = "electromagnetic.alpha_inv"
  experiment = "codata_2022"
  path       = "em.parameters.alpha_inv"
}
check "alpha_inv" {
  parameter  = "electromagnetic.alpha_inv"
  experiment = "codata_2022"
  path       = "em.parameters.alpha_inv"
}
`,
			wantMsg: `duplicate check "alpha_inv"`,
		},
		{
			name: "unknown experiment reference",
			content: `
check "alpha_inv" {
  parameter  = "electromagnetic.alpha_inv"
  experiment = "codata_1998"
  path       = "em.parameters.alpha_inv"
}
`,
			wantMsg: `references unknown experiment "codata_1998"`,
		},
		{
			name: "empty data path",
			content: `
experiment "codata_2022" { file = "a.json" }
check "alpha_inv" {
  parameter  = "electromagnetic.alpha_inv"
  experiment = "codata_2022"
  path       = ""
}
`,
			wantMsg: "path must not be empty",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(context.Background(), writeManifest(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoad_MalformedParameterPath(t *testing.T) {
	t.Parallel()
	path := writeManifest(t, `
experiment "codata_2022" { file = "a.json" }
check "alpha_inv" {
  parameter  = "electromagnetic..alpha_inv"
  experiment = "codata_2022"
  path       = "em.parameters.alpha_inv"
}
`)

	_, err := Load(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSchema)
	assert.Contains(t, err.Error(), `check "alpha_inv"`)
}
