package e2e

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvrtelov/robottelo/internal/api"
	"github.com/lvrtelov/robottelo/internal/cli"
	"github.com/lvrtelov/robottelo/internal/config"
	"github.com/lvrtelov/robottelo/internal/factory"
	"github.com/lvrtelov/robottelo/internal/hostinfo"
	"github.com/lvrtelov/robottelo/internal/ssh"
)

// Harness wires every channel the suites drive: API client, hammer over
// SSH, and inspectors on the server and capsule hosts.
type Harness struct {
	Settings *config.Settings
	Fixtures *Fixtures

	API     *api.Client
	Hammer  *cli.Hammer
	SSH     *ssh.Client
	Factory *factory.Factory

	Server  *hostinfo.Inspector
	Capsule *hostinfo.Inspector

	// HTTP fetches published content directly (checksum comparisons).
	HTTP *http.Client
}

// skipUnlessE2E gates live-deployment tests behind short mode and an
// explicit opt-in, so plain `go test ./...` stays hermetic.
func skipUnlessE2E(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	if os.Getenv("ROBOTTELO_E2E") == "" {
		t.Skip("set ROBOTTELO_E2E=1 to run against a live deployment")
	}
}

// newHarness builds the full harness from ROBOTTELO_CONFIG (or pure env
// settings) and fails the test on any wiring problem.
func newHarness(t *testing.T) *Harness {
	t.Helper()

	settings, err := config.Load(os.Getenv("ROBOTTELO_CONFIG"))
	require.NoError(t, err)
	require.NoError(t, settings.Validate())

	fixtures, err := loadFixtures("testdata/fixtures.yaml")
	require.NoError(t, err)

	client, err := api.NewClient(api.ClientConfig{
		BaseURL:        settings.BaseURL(),
		Username:       settings.Server.Username,
		Password:       settings.Server.Password,
		VerifyTLS:      settings.Server.VerifyTLS,
		RequestTimeout: settings.Harness.RequestTimeout,
		RateLimit:      settings.Harness.RateLimit,
		RateBurst:      settings.Harness.RateBurst,
		PollInterval:   settings.Harness.PollInterval,
	})
	require.NoError(t, err)

	sshClient, err := ssh.NewClient(ssh.Config{
		Username: settings.Server.SSHUsername,
		Password: settings.Server.SSHPassword,
		KeyFile:  settings.Server.SSHKeyFile,
		Port:     settings.Server.SSHPort,
	})
	require.NoError(t, err)

	serverExec := &cli.SSHExecutor{Client: sshClient, Host: settings.Server.Hostname}
	hammer := cli.NewHammer(serverExec, cli.HammerConfig{
		Bin:      settings.Harness.HammerBin,
		Username: settings.Server.Username,
		Password: settings.Server.Password,
	})

	h := &Harness{
		Settings: settings,
		Fixtures: fixtures,
		API:      client,
		Hammer:   hammer,
		SSH:      sshClient,
		Factory:  factory.New(client),
		Server:   hostinfo.NewInspector(serverExec),
		HTTP: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !settings.Server.VerifyTLS},
			},
		},
	}
	if settings.CapsuleConfigured() {
		h.Capsule = hostinfo.NewInspector(&cli.SSHExecutor{
			Client: sshClient,
			Host:   settings.Capsule.Hostname,
		})
	}
	return h
}

// taskCtx returns a context bounded by the configured task timeout.
func (h *Harness) taskCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), h.Settings.Harness.TaskTimeout)
	t.Cleanup(cancel)
	return ctx
}

// requireCapsule skips the test unless a capsule is configured.
func (h *Harness) requireCapsule(t *testing.T) {
	t.Helper()
	if h.Capsule == nil {
		t.Skip("no capsule configured")
	}
}

// requireDocker skips the test unless an external registry is configured.
func (h *Harness) requireDocker(t *testing.T) {
	t.Helper()
	if !h.Settings.DockerConfigured() {
		t.Skip("no external docker registry configured")
	}
}
