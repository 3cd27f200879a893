package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvReplacesVariables(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")

	out := ExpandEnv([]byte("host: {{.TEST_DB_HOST}}"))
	assert.Equal(t, "host: db.internal", string(out))
}

func TestExpandEnvMissingVariableBecomesEmpty(t *testing.T) {
	out := ExpandEnv([]byte("host: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
	assert.Equal(t, "host: ", string(out))
}

func TestExpandEnvLeavesDollarSignsAlone(t *testing.T) {
	in := []byte(`password: "pa$$word$HOME"`)
	assert.Equal(t, in, ExpandEnv(in))
}

func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	in := []byte("pattern: {{unclosed")
	assert.Equal(t, in, ExpandEnv(in))
}
