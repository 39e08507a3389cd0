package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records commands and replays canned results.
type fakeExecutor struct {
	commands []string
	results  []*ExecResult
}

func (f *fakeExecutor) Exec(_ context.Context, command string) (*ExecResult, error) {
	f.commands = append(f.commands, command)
	if len(f.results) == 0 {
		return &ExecResult{}, nil
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res, nil
}

func newTestHammer(results ...*ExecResult) (*Hammer, *fakeExecutor) {
	exec := &fakeExecutor{results: results}
	h := NewHammer(exec, HammerConfig{Username: "admin", Password: "changeme"})
	return h, exec
}

func TestOptions_RenderSortedAndQuoted(t *testing.T) {
	opts := Options{
		"name":            "my repo",
		"organization-id": "3",
		"async":           "",
	}
	assert.Equal(t, " --async --name 'my repo' --organization-id '3'", opts.render())
}

func TestQuote_EscapesSingleQuotes(t *testing.T) {
	assert.Equal(t, `'it'\''s'`, quote("it's"))
}

func TestHammer_CommandLine(t *testing.T) {
	h, exec := newTestHammer(&ExecResult{Stdout: `{"Id": 1, "Name": "acme"}`})

	org, err := h.Org.Info(context.Background(), Options{"name": "acme"})
	require.NoError(t, err)
	assert.Equal(t, 1, org.ID)

	require.Len(t, exec.commands, 1)
	assert.Equal(t,
		"LANG=en_US.UTF-8 hammer -u 'admin' -p 'changeme' --output json organization info --name 'acme'",
		exec.commands[0])
}

func TestHammer_ReturnCodeError(t *testing.T) {
	h, _ := newTestHammer(&ExecResult{
		Code:   70,
		Stderr: "Could not update the repository:\n  Validation failed",
	})

	err := h.Repository.Update(context.Background(), Options{"id": "5", "docker-upstream-name": "BAD"})
	require.Error(t, err)

	var rc *ReturnCodeError
	require.ErrorAs(t, err, &rc)
	assert.Equal(t, 70, rc.Status)
	assert.Contains(t, rc.Stderr, "Validation failed")
	assert.Equal(t, "repository update", rc.Command)
	assert.True(t, IsReturnCode(err, 70))
	assert.False(t, IsReturnCode(err, 1))
	assert.True(t, IsReturnCode(err, -1))
}

func TestHammer_DecodesInfoPayloads(t *testing.T) {
	repoJSON := `{
		"Id": 12,
		"Name": "busybox",
		"Content Type": "docker",
		"Upstream Repository Name": "library/busybox",
		"Container Repository Name": "acme-prod-busybox",
		"Content Counts": {"Container Image Manifests": "16", "Container Image Tags": "5"}
	}`
	h, _ := newTestHammer(&ExecResult{Stdout: repoJSON})

	repo, err := h.Repository.Info(context.Background(), Options{"id": "12"})
	require.NoError(t, err)
	assert.Equal(t, "library/busybox", repo.UpstreamRepositoryName)
	assert.Equal(t, "acme-prod-busybox", repo.ContainerRepositoryName)
	assert.Equal(t, "16", repo.ContentCounts.ContainerImageManifests)
}

func TestHammer_DecodeFailure(t *testing.T) {
	h, _ := newTestHammer(&ExecResult{Stdout: "Repository created."})

	_, err := h.Repository.Info(context.Background(), Options{"id": "1"})
	assert.ErrorContains(t, err, "decode output")
}

func TestContentView_VersionInfoEnvironments(t *testing.T) {
	cvvJSON := `{
		"Id": 8,
		"Version": "1.0",
		"Lifecycle Environments": [
			{"Id": 1, "Name": "Library"},
			{"Id": 4, "Name": "DEV"}
		]
	}`
	h, _ := newTestHammer(&ExecResult{Stdout: cvvJSON})

	cvv, err := h.ContentView.VersionInfo(context.Background(), Options{"id": "8"})
	require.NoError(t, err)
	require.Len(t, cvv.LifecycleEnvironments, 2)
	assert.Equal(t, "DEV", cvv.LifecycleEnvironments[1].Name)
}

func TestMake_GeneratesNameAndFetchesInfo(t *testing.T) {
	h, exec := newTestHammer(
		&ExecResult{Stdout: "Organization created."},
		&ExecResult{Stdout: `{"Id": 77, "Name": "whatever"}`},
	)

	org, err := h.Org.Make(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 77, org.ID)

	require.Len(t, exec.commands, 2)
	assert.Contains(t, exec.commands[0], "organization create --name")
	assert.Contains(t, exec.commands[1], "organization info --name")
}
