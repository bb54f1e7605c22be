package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/ctxlog"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/fsutil"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
)

// Load finds, parses, and merges one or more HCL manifest files into a
// single verified Manifest. Each path may be a file or a directory that is
// scanned recursively for .hcl files; directory contents merge in lexical
// order so repeated runs see the same manifest.
func Load(ctx context.Context, paths ...string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		resolved, err := resolvePath(path)
		if err != nil {
			return nil, err
		}
		files = append(files, resolved...)
	}

	m := &Manifest{}
	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found.", "paths", paths)
		return m, nil
	}

	for _, file := range files {
		logger.Debug("Decoding manifest file.", "path", file)
		doc, err := decodeFile(file)
		if err != nil {
			return nil, err
		}
		m.merge(file, doc)
	}

	if err := m.verify(); err != nil {
		return nil, err
	}

	logger.Info("Manifest loaded.",
		"files", len(files),
		"experiments", len(m.Experiments),
		"simulations", len(m.Simulations),
		"checks", len(m.Checks))
	return m, nil
}

// resolvePath takes a path and returns a slice of all .hcl files found. If
// the path is a file, it returns a slice containing just that file. If the
// path is a directory, it recursively finds all .hcl files within it.
func resolvePath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("manifest path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if info.IsDir() {
		return fsutil.FindFilesByExtension(path, ".hcl")
	}

	if filepath.Ext(path) != ".hcl" {
		return nil, fmt.Errorf("specified file is not an .hcl file: %s", path)
	}
	return []string{path}, nil
}

// decodeFile parses and decodes a single HCL manifest file.
func decodeFile(filePath string) (*document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filePath, diags.Error())
	}

	var doc document
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filePath, diags.Error())
	}
	return &doc, nil
}

func (m *Manifest) merge(file string, doc *document) {
	m.Paths = append(m.Paths, file)
	for _, e := range doc.Experiments {
		m.Experiments = append(m.Experiments, Experiment{Label: e.Label, File: e.File, Source: e.Source})
	}
	for _, s := range doc.Simulations {
		m.Simulations = append(m.Simulations, s.Name)
	}
	for _, c := range doc.Checks {
		m.Checks = append(m.Checks, Check{
			Name:       c.Name,
			Sector:     c.Sector,
			Parameter:  c.Parameter,
			Experiment: c.Experiment,
			Path:       c.Path,
		})
	}
}

// verify enforces the cross-block rules the HCL grammar cannot express:
// unique labels, non-empty attributes, well-formed parameter paths, and
// check rows that reference a declared experiment. It also resolves each
// check's experiment label into the concrete file and source name.
func (m *Manifest) verify() error {
	experiments := make(map[string]Experiment, len(m.Experiments))
	for _, e := range m.Experiments {
		if e.Label == "" {
			return fmt.Errorf("experiment block has an empty label")
		}
		if _, exists := experiments[e.Label]; exists {
			return fmt.Errorf("duplicate experiment %q", e.Label)
		}
		if e.File == "" {
			return fmt.Errorf("experiment %q: file must not be empty", e.Label)
		}
		experiments[e.Label] = e
	}

	simulations := make(map[string]bool, len(m.Simulations))
	for _, name := range m.Simulations {
		if name == "" {
			return fmt.Errorf("simulation block has an empty label")
		}
		if simulations[name] {
			return fmt.Errorf("duplicate simulation %q", name)
		}
		simulations[name] = true
	}

	checks := make(map[string]bool, len(m.Checks))
	for i := range m.Checks {
		c := &m.Checks[i]
		if c.Name == "" {
			return fmt.Errorf("check block has an empty label")
		}
		if checks[c.Name] {
			return fmt.Errorf("duplicate check %q", c.Name)
		}
		checks[c.Name] = true

		if err := model.ValidatePath(c.Parameter); err != nil {
			return fmt.Errorf("check %q: parameter: %w", c.Name, err)
		}
		if c.Path == "" {
			return fmt.Errorf("check %q: path must not be empty", c.Name)
		}
		exp, ok := experiments[c.Experiment]
		if !ok {
			return fmt.Errorf("check %q references unknown experiment %q", c.Name, c.Experiment)
		}
		c.File = exp.File
		c.Source = exp.Source
	}
	return nil
}
