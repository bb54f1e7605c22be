package app

import (
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/sim"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/simulations/cosmology"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/simulations/electroweak"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/simulations/gauge"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/simulations/topology"
)

// coreAdapters is the definitive list of all simulations that are compiled
// into the pmvalidate binary.
var coreAdapters = []sim.Adapter{
	&topology.Simulation{},
	&gauge.Simulation{},
	&electroweak.Simulation{},
	&cosmology.Simulation{},
}
