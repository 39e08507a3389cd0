package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https", s.Server.Scheme)
	assert.Equal(t, "root", s.Server.SSHUsername)
	assert.Equal(t, 22, s.Server.SSHPort)
	assert.Equal(t, 30*time.Minute, s.Harness.TaskTimeout)
	assert.Equal(t, "hammer", s.Harness.HammerBin)
}

func TestLoad_FileAndEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robottelo.yaml")
	content := `
server:
  hostname: sat.example.com
  username: admin
  password: changeme
capsule:
  enabled: true
  hostname: capsule.example.com
  id: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ROBOTTELO_SERVER_PASSWORD", "fromenv")
	t.Setenv("ROBOTTELO_TASK_TIMEOUT", "5m")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sat.example.com", s.Server.Hostname)
	assert.Equal(t, "fromenv", s.Server.Password)
	assert.Equal(t, 5*time.Minute, s.Harness.TaskTimeout)
	assert.True(t, s.CapsuleConfigured())
	require.NoError(t, s.Validate())
}

func TestValidate_MissingHostname(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	s.Server.Username = "admin"
	s.Server.Password = "changeme"

	assert.ErrorContains(t, s.Validate(), "hostname")
}

func TestValidate_CapsuleNeedsHostname(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	s.Server.Hostname = "sat.example.com"
	s.Server.Username = "admin"
	s.Server.Password = "changeme"
	s.Capsule.Enabled = true

	assert.ErrorContains(t, s.Validate(), "capsule hostname")
}

func TestBaseURL(t *testing.T) {
	s := &Settings{}
	s.Server.Scheme = "https"
	s.Server.Hostname = "sat.example.com"
	assert.Equal(t, "https://sat.example.com", s.BaseURL())

	s.Server.Port = 8443
	assert.Equal(t, "https://sat.example.com:8443", s.BaseURL())
}

func TestFeatureToggles(t *testing.T) {
	s := &Settings{}
	assert.False(t, s.CapsuleConfigured())
	assert.False(t, s.DockerConfigured())
	assert.False(t, s.ClientsConfigured())

	s.Docker.ExternalRegistry = "https://registry.example.com"
	assert.True(t, s.DockerConfigured())
}
