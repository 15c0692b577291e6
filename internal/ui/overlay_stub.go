//go:build !ebiten

package ui

import (
	"heartmaze/internal/core"
	"heartmaze/internal/theme"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int, theme.Theme) *Overlay { return &Overlay{} }

// SetTheme is a no-op in headless builds.
func (o *Overlay) SetTheme(theme.Theme) {}

// SetPaused is a no-op in headless builds.
func (o *Overlay) SetPaused(bool) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
