package theme

import (
	"image/color"
	"slices"
	"testing"
)

func TestLookupKnownAndUnknown(t *testing.T) {
	for _, key := range Keys() {
		th, err := Lookup(key)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", key, err)
		}
		if th.Key != key || th.Name == "" || th.Token == 0 {
			t.Fatalf("theme %q incomplete: %+v", key, th)
		}
	}
	if _, err := Lookup("neon"); err == nil {
		t.Fatal("unknown theme should error")
	}
	if !slices.Contains(Keys(), Default) {
		t.Fatalf("default theme %q missing", Default)
	}
}

func TestDim(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := Dim(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 25, A: 255}) {
		t.Fatalf("Dim half = %+v", got)
	}
	if got := Dim(c, 2); got != c {
		t.Fatalf("Dim above one should clamp, got %+v", got)
	}
	if got := Dim(c, -1); got != (color.RGBA{A: 255}) {
		t.Fatalf("Dim below zero should clamp, got %+v", got)
	}
}
