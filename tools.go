//go:build tools

package main

// Pin code generation tools so `go mod tidy` keeps them versioned.
import (
	_ "github.com/vektra/mockery/v2"
)
