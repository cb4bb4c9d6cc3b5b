//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// run executes the built CLI with the given arguments.
func run(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// News builds the binary and runs the news pipeline with defaults.
func News() error {
	mg.Deps(Build)
	return run("build")
}

// Catalog builds the binary and runs the catalog pipeline with defaults.
func Catalog() error {
	mg.Deps(Build)
	return run("catalog")
}
