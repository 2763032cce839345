// CubeClad: bill-of-materials planner for modular garden cubes.
//
// Build:
//   go build -o cubeclad ./cmd/cubeclad
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o cubeclad.exe ./cmd/cubeclad
//   GOOS=darwin  GOARCH=arm64 go build -o cubeclad-darwin ./cmd/cubeclad

package main

import (
	"fmt"
	"os"

	"github.com/piwi3910/CubeClad/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
