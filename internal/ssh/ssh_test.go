package ssh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{Password: "x"})
	assert.ErrorContains(t, err, "username")

	_, err = NewClient(Config{Username: "root"})
	assert.ErrorContains(t, err, "password or a key file")

	c, err := NewClient(Config{Username: "root", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, 22, c.cfg.Port)
	assert.NotZero(t, c.cfg.ConnectTimeout)
}

func TestResult_StdoutString(t *testing.T) {
	r := &Result{Stdout: []string{"a", "b"}}
	assert.Equal(t, "a\nb", r.StdoutString())
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Nil(t, splitLines("\n"))
	assert.Equal(t, []string{"one"}, splitLines("one\n"))
	assert.Equal(t, []string{"one", "", "two"}, splitLines("one\n\ntwo"))
}
