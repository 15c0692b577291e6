//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of heartmaze requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/heartmaze`, or play in a terminal with `go run ./cmd/heartmaze-term`.")
	os.Exit(2)
}
