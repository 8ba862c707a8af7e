//go:build tools
// +build tools

// Tool dependencies pinned for the code generators run through go generate.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
