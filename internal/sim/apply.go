package sim

import (
	"fmt"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/registry"
)

// Apply merges one simulation result into the registry: formulas first,
// then parameters. Parameters that carry no sector inherit the
// simulation's. The first rejection (malformed path, unknown status, blank
// provenance, duplicate formula, status conflict) aborts with the
// simulation's identity wrapped in.
func Apply(reg *registry.Registry, meta Metadata, res *Result) error {
	if res == nil {
		return nil
	}
	for _, f := range res.Formulas {
		if err := reg.RegisterFormula(f); err != nil {
			return fmt.Errorf("simulation %s: %w", meta.Name, err)
		}
	}
	for _, p := range res.Parameters {
		if p.Sector == "" {
			p.Sector = meta.Sector
		}
		if err := reg.SetParam(p); err != nil {
			return fmt.Errorf("simulation %s: %w", meta.Name, err)
		}
	}
	return nil
}
