//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "bin/powerline-go"

// Default target - build the binary
var Default = Build

// Build builds the powerline-go binary
func Build() error {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := fmt.Sprintf("-s -w -X powerline-go/internal/model.Version=%s", version)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binary, ".")
}

// Test runs the test suite with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs vet and tests
func QA() {
	mg.SerialDeps(Vet, Test)
}

// Install builds and installs into GOBIN
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", ".")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
