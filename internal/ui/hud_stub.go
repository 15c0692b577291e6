//go:build !ebiten

package ui

import (
	"heartmaze/internal/core"
	"heartmaze/internal/theme"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int, theme.Theme) *HUD { return nil }

// SetTheme is a no-op in the headless build.
func (h *HUD) SetTheme(theme.Theme) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
