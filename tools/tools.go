//go:build tools

package tools

// Tool dependencies pinned in go.mod. oapi-codegen renders api/openapi.yaml
// into internal/api (see internal/api/generate.go); the goose CLI is handy for
// writing new migrations. Run `go mod tidy` after adding/removing tools here.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
