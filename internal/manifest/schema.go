package manifest

import "github.com/hashicorp/hcl/v2"

// --- HCL decode structures ---

// experimentBlock represents an `experiment` block: one external reference
// data source.
type experimentBlock struct {
	Label  string `hcl:"label,label"`
	File   string `hcl:"file"`
	Source string `hcl:"source,optional"`
}

// simulationBlock represents a `simulation` block: one entry of the ordered
// run list. The body is intentionally empty.
type simulationBlock struct {
	Name string `hcl:"name,label"`
}

// checkBlock represents a `check` block: one row of the explicit mapping
// table between a registry parameter and an experimental reference value.
type checkBlock struct {
	Name       string `hcl:"name,label"`
	Sector     string `hcl:"sector,optional"`
	Parameter  string `hcl:"parameter"`
	Experiment string `hcl:"experiment"`
	Path       string `hcl:"path"`
}

// document represents the top-level structure of one manifest file.
type document struct {
	Experiments []*experimentBlock `hcl:"experiment,block"`
	Simulations []*simulationBlock `hcl:"simulation,block"`
	Checks      []*checkBlock      `hcl:"check,block"`
	Body        hcl.Body           `hcl:",remain"`
}

// --- Verified model ---

// Experiment names one experimental reference document.
type Experiment struct {
	Label  string
	File   string
	Source string
}

// Check is one verified row of the mapping table. File and Source are
// resolved from the referenced experiment block during verification.
type Check struct {
	Name       string
	Sector     string
	Parameter  string
	Experiment string
	Path       string
	File       string
	Source     string
}

// Manifest is the merged, verified content of all loaded manifest files.
// All slices preserve declaration order; the report follows it.
type Manifest struct {
	Paths       []string
	Experiments []Experiment
	Simulations []string
	Checks      []Check
}
