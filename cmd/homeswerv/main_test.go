package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateRejectsUnknownCommand(t *testing.T) {
	cmd := newMigrateCmd()
	cmd.SetArgs([]string{"sideways"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	assert.ErrorContains(t, err, `invalid argument "sideways"`)
}

func TestMigrateRequiresOneArg(t *testing.T) {
	cmd := newMigrateCmd()
	cmd.SetArgs([]string{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	assert.Error(t, cmd.Execute())
}

func TestServeRejectsArgs(t *testing.T) {
	cmd := newServeCmd()
	cmd.SetArgs([]string{"extra"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	assert.Error(t, cmd.Execute())
}
