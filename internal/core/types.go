package core

import "hashlife/pkg/lifesim"

// Factory constructs a lifesim.Life from an initial grid and a requested
// warp level. Unlike the cfg-map factories this registry used to hold,
// every Life implementation in this repository has its boundary mode
// baked into the factory itself at registration time; warpLevel is the
// one piece of configuration that varies per run rather than per mode
// (pkg/sims/nodelife.Create's warpLevel parameter), so it's threaded
// through here instead. Factories for modes that don't have a warp level
// simply ignore it.
type Factory func(grid [][]bool, warpLevel int) lifesim.Life

var sims = map[string]Factory{}

// Register adds a Life factory under the provided name. Packages call this
// from an init() function, the same way pkg/sims/gridlife and
// pkg/sims/nodelife self-register.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available Life factories.
func Sims() map[string]Factory {
	return sims
}
