//go:build !ebiten

package ui

import "hashlife/pkg/lifesim"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(scale int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(life lifesim.Life, generation int64) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
