//go:build tools
// +build tools

// Package tools pins build-time tool dependencies.
package tools

import (
	_ "github.com/air-verse/air"
	_ "github.com/swaggo/swag"
)
