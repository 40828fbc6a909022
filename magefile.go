//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Build compiles the koshaenrich binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "koshaenrich", "./cmd/koshaenrich")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install installs the binary into GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "./cmd/koshaenrich")
}
