// Package hostinfo inspects the server's published content over the SSH
// command channel: filesystem layout under pulp, repo metadata, package
// checksums.
package hostinfo

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/lvrtelov/robottelo/internal/cli"
)

// PulpHTTPRoot is where published yum repositories land on disk.
const PulpHTTPRoot = "/var/lib/pulp/published/yum/http/repos"

// RepoPath returns the published path of a repository in a lifecycle
// environment, relative to the pulp http root.
func RepoPath(orgLabel, lceLabel, cvLabel, productLabel, repoLabel string) string {
	return fmt.Sprintf("%s/%s/%s/custom/%s/%s",
		orgLabel, lceLabel, cvLabel, productLabel, repoLabel)
}

// VersionRepoPath returns the published path of a repository inside an
// archived content view version (the per-version copy, not an environment).
func VersionRepoPath(orgLabel, cvLabel, version, productLabel, repoLabel string) string {
	return fmt.Sprintf("%s/content_views/%s/%s/custom/%s/%s",
		orgLabel, cvLabel, version, productLabel, repoLabel)
}

// Inspector runs inspection commands on one host.
type Inspector struct {
	exec cli.Executor
}

func NewInspector(exec cli.Executor) *Inspector {
	return &Inspector{exec: exec}
}

// RepoRPMs lists the RPM filenames published at repoPath, sorted.
func (i *Inspector) RepoRPMs(ctx context.Context, repoPath string) ([]string, error) {
	cmd := fmt.Sprintf("find %s/%s -name '*.rpm' -printf '%%f\\n'", PulpHTTPRoot, repoPath)
	res, err := i.exec.Exec(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if res.Code != 0 {
		return nil, errors.Errorf("hostinfo: list rpms in %s: %s", repoPath, res.Stderr)
	}
	rpms := splitNonEmpty(res.Stdout)
	sort.Strings(rpms)
	return rpms, nil
}

// RepomdRevision reads the revision of the published repo metadata. A
// revision with a non-numeric prefix means the repo was published with
// mismatched signing and is reported as an error.
func (i *Inspector) RepomdRevision(ctx context.Context, repoPath string) (string, error) {
	cmd := fmt.Sprintf("cat %s/%s/repodata/repomd.xml", PulpHTTPRoot, repoPath)
	res, err := i.exec.Exec(ctx, cmd)
	if err != nil {
		return "", err
	}
	if res.Code != 0 {
		return "", errors.Errorf("hostinfo: read repomd in %s: %s", repoPath, res.Stderr)
	}
	return ParseRepomdRevision(res.Stdout)
}

// ParseRepomdRevision extracts the revision element from repomd.xml.
func ParseRepomdRevision(doc string) (string, error) {
	var repomd struct {
		Revision string `xml:"revision"`
	}
	if err := xml.Unmarshal([]byte(doc), &repomd); err != nil {
		return "", errors.Wrap(err, "hostinfo: parse repomd.xml")
	}
	if repomd.Revision == "" {
		return "", errors.New("hostinfo: repomd.xml has no revision")
	}
	if !allDigits(repomd.Revision) {
		return "", errors.Errorf("hostinfo: unexpected repomd revision %q", repomd.Revision)
	}
	return repomd.Revision, nil
}

// Symlinks lists every symlink under rootPath as a string set.
func (i *Inspector) Symlinks(ctx context.Context, rootPath string) (map[string]struct{}, error) {
	return i.findLinks(ctx, rootPath, fmt.Sprintf("find %s -type l", rootPath))
}

// BrokenSymlinks lists the dangling symlinks under rootPath. An on-demand
// repository publishes all its packages as broken links until content is
// fetched.
func (i *Inspector) BrokenSymlinks(ctx context.Context, rootPath string) (map[string]struct{}, error) {
	return i.findLinks(ctx, rootPath, fmt.Sprintf("find %s -xtype l", rootPath))
}

func (i *Inspector) findLinks(ctx context.Context, rootPath, cmd string) (map[string]struct{}, error) {
	res, err := i.exec.Exec(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if res.Code != 0 {
		return nil, errors.Errorf("hostinfo: find links in %s: %s", rootPath, res.Stderr)
	}
	out := make(map[string]struct{})
	for _, line := range splitNonEmpty(res.Stdout) {
		out[line] = struct{}{}
	}
	return out, nil
}

// MD5ByURL downloads url and returns the md5 of the body, for comparing a
// published package against its upstream source.
func MD5ByURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, "hostinfo: build request for %s", url)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "hostinfo: fetch %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("hostinfo: fetch %s: status %d", url, resp.StatusCode)
	}

	h := md5.New()
	if _, err := io.Copy(h, resp.Body); err != nil {
		return "", errors.Wrapf(err, "hostinfo: read %s", url)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CreateRepo builds a throwaway yum repository on the host from upstream
// fixture RPMs and returns its path under the public web root. Used to
// feed change-detection suites a repo whose content the test controls.
func (i *Inspector) CreateRepo(ctx context.Context, name, sourceURL string, rpms []string) (string, error) {
	repoDir := "/var/www/html/pub/" + name
	cmds := []string{
		fmt.Sprintf("mkdir -p %s", repoDir),
	}
	for _, rpm := range rpms {
		cmds = append(cmds, fmt.Sprintf("wget -P %s %s/%s",
			repoDir, strings.TrimRight(sourceURL, "/"), rpm))
	}
	cmds = append(cmds,
		fmt.Sprintf("createrepo %s", repoDir),
		fmt.Sprintf("chmod -R o+r %s", repoDir),
	)

	for _, cmd := range cmds {
		res, err := i.exec.Exec(ctx, cmd)
		if err != nil {
			return "", err
		}
		if res.Code != 0 {
			return "", errors.Errorf("hostinfo: %q failed: %s", cmd, res.Stderr)
		}
	}
	return "pub/" + name, nil
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
