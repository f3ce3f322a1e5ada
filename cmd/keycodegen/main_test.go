package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("KEYCODEGEN_CONFIG", "")

	assert.Equal(t, "a.yaml", findUserConfig([]string{"--config=a.yaml"}))
	assert.Equal(t, "b.toml", findUserConfig([]string{"scan", "--config", "b.toml"}))
	assert.Equal(t, "", findUserConfig([]string{"--config"}))
	assert.Equal(t, "", findUserConfig(nil))

	t.Setenv("KEYCODEGEN_CONFIG", "env.json")
	assert.Equal(t, "env.json", findUserConfig(nil))
}
