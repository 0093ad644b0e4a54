//go:build tools

// Package tools pins the versions of the test runner and linter used by the repository.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "gotest.tools/gotestsum"
)
