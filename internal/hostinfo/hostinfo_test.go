package hostinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvrtelov/robottelo/internal/cli"
)

type fakeExecutor struct {
	commands []string
	results  []*cli.ExecResult
}

func (f *fakeExecutor) Exec(_ context.Context, command string) (*cli.ExecResult, error) {
	f.commands = append(f.commands, command)
	if len(f.results) == 0 {
		return &cli.ExecResult{}, nil
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res, nil
}

func TestRepoPath(t *testing.T) {
	got := RepoPath("acme", "dev", "rhel-view", "my_product", "zoo")
	assert.Equal(t, "acme/dev/rhel-view/custom/my_product/zoo", got)
}

func TestVersionRepoPath(t *testing.T) {
	got := VersionRepoPath("acme", "rhel-view", "2.0", "my_product", "zoo")
	assert.Equal(t, "acme/content_views/rhel-view/2.0/custom/my_product/zoo", got)
}

func TestRepoRPMs_SortedOutput(t *testing.T) {
	exec := &fakeExecutor{results: []*cli.ExecResult{
		{Stdout: "walrus-5.21-1.noarch.rpm\nbear-4.1-1.noarch.rpm\n"},
	}}
	insp := NewInspector(exec)

	rpms, err := insp.RepoRPMs(context.Background(), "acme/Library/cv/custom/prod/zoo")
	require.NoError(t, err)
	assert.Equal(t, []string{"bear-4.1-1.noarch.rpm", "walrus-5.21-1.noarch.rpm"}, rpms)
	assert.Contains(t, exec.commands[0], PulpHTTPRoot)
	assert.Contains(t, exec.commands[0], "-name '*.rpm'")
}

func TestParseRepomdRevision(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<repomd xmlns="http://linux.duke.edu/metadata/repo">
  <revision>1612345678</revision>
  <data type="primary"><location href="repodata/primary.xml.gz"/></data>
</repomd>`
	rev, err := ParseRepomdRevision(doc)
	require.NoError(t, err)
	assert.Equal(t, "1612345678", rev)
}

func TestParseRepomdRevision_PrefixedRevision(t *testing.T) {
	doc := `<repomd><revision>unsigned-1612345678</revision></repomd>`
	_, err := ParseRepomdRevision(doc)
	assert.ErrorContains(t, err, "unexpected repomd revision")
}

func TestParseRepomdRevision_Missing(t *testing.T) {
	_, err := ParseRepomdRevision(`<repomd></repomd>`)
	assert.ErrorContains(t, err, "no revision")
}

func TestBrokenSymlinks(t *testing.T) {
	exec := &fakeExecutor{results: []*cli.ExecResult{
		{Stdout: "/path/a.rpm\n/path/b.rpm\n"},
	}}
	insp := NewInspector(exec)

	links, err := insp.BrokenSymlinks(context.Background(), "/path")
	require.NoError(t, err)
	assert.Len(t, links, 2)
	assert.Contains(t, links, "/path/a.rpm")
	assert.Contains(t, exec.commands[0], "-xtype l")
}

func TestSymlinks_CommandFailure(t *testing.T) {
	exec := &fakeExecutor{results: []*cli.ExecResult{
		{Code: 1, Stderr: "find: no such directory"},
	}}
	insp := NewInspector(exec)

	_, err := insp.Symlinks(context.Background(), "/missing")
	assert.ErrorContains(t, err, "no such directory")
}

func TestMD5ByURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	sum, err := MD5ByURL(context.Background(), srv.Client(), srv.URL+"/pkg.rpm")
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)
}

func TestMD5ByURL_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := MD5ByURL(context.Background(), srv.Client(), srv.URL+"/missing.rpm")
	assert.ErrorContains(t, err, "status 404")
}

func TestCreateRepo_CommandSequence(t *testing.T) {
	exec := &fakeExecutor{}
	insp := NewInspector(exec)

	path, err := insp.CreateRepo(context.Background(), "fake_yum", "http://fixtures.example.com/zoo", []string{"bear-4.1-1.noarch.rpm"})
	require.NoError(t, err)
	assert.Equal(t, "pub/fake_yum", path)

	require.Len(t, exec.commands, 4)
	assert.Contains(t, exec.commands[0], "mkdir -p /var/www/html/pub/fake_yum")
	assert.Contains(t, exec.commands[1], "wget")
	assert.Contains(t, exec.commands[1], "bear-4.1-1.noarch.rpm")
	assert.Contains(t, exec.commands[2], "createrepo")
}
