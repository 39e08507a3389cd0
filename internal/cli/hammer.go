package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ExecResult is the outcome of one command run by an Executor. A non-zero
// Code is carried as data; the Hammer layer turns it into ReturnCodeError.
type ExecResult struct {
	Stdout string
	Stderr string
	Code   int
}

// Executor runs a shell command somewhere: on the server host over SSH in
// production, in-process fakes in tests.
type Executor interface {
	Exec(ctx context.Context, command string) (*ExecResult, error)
}

// Options are hammer flag values keyed by flag name (without the leading
// dashes). An empty value renders as a bare switch.
type Options map[string]string

// render produces a deterministic flag string: keys sorted, values
// single-quoted.
func (o Options) render() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(" --")
		b.WriteString(k)
		if v := o[k]; v != "" {
			b.WriteString(" ")
			b.WriteString(quote(v))
		}
	}
	return b.String()
}

// quote wraps v in single quotes, escaping embedded ones the POSIX way.
func quote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

// ReturnCodeError carries a non-zero hammer exit unchanged to the caller;
// suites assert on Status and Stderr rather than on wrapped messages.
type ReturnCodeError struct {
	Status  int
	Stderr  string
	Command string
}

func (e *ReturnCodeError) Error() string {
	return fmt.Sprintf("hammer exited %d: %s (command: %s)", e.Status, strings.TrimSpace(e.Stderr), e.Command)
}

// IsReturnCode reports whether err is a ReturnCodeError, optionally with a
// specific status when status >= 0.
func IsReturnCode(err error, status int) bool {
	var rc *ReturnCodeError
	if !errors.As(err, &rc) {
		return false
	}
	return status < 0 || rc.Status == status
}

// Hammer drives the platform's CLI. Every data-bearing command passes
// --output json.
type Hammer struct {
	exec     Executor
	bin      string
	username string
	password string

	Org                  *OrgCommands
	Product              *ProductCommands
	Repository           *RepositoryCommands
	ContentView          *ContentViewCommands
	LifecycleEnvironment *LifecycleEnvironmentCommands
	ActivationKey        *ActivationKeyCommands
	Defaults             *DefaultsCommands
}

type HammerConfig struct {
	Bin      string
	Username string
	Password string
}

func NewHammer(exec Executor, cfg HammerConfig) *Hammer {
	if cfg.Bin == "" {
		cfg.Bin = "hammer"
	}
	h := &Hammer{
		exec:     exec,
		bin:      cfg.Bin,
		username: cfg.Username,
		password: cfg.Password,
	}
	h.Org = &OrgCommands{h}
	h.Product = &ProductCommands{h}
	h.Repository = &RepositoryCommands{h}
	h.ContentView = &ContentViewCommands{h}
	h.LifecycleEnvironment = &LifecycleEnvironmentCommands{h}
	h.ActivationKey = &ActivationKeyCommands{h}
	h.Defaults = &DefaultsCommands{h}
	return h
}

// Run executes a hammer subcommand and returns raw stdout. JSON output is
// requested for every invocation so list/info results stay parseable.
func (h *Hammer) Run(ctx context.Context, args []string, opts Options) (string, error) {
	cmd := fmt.Sprintf("LANG=en_US.UTF-8 %s -u %s -p %s --output json %s%s",
		h.bin, quote(h.username), quote(h.password), strings.Join(args, " "), opts.render())

	klog.V(2).Infof("hammer: %s %s", strings.Join(args, " "), opts.render())

	res, err := h.exec.Exec(ctx, cmd)
	if err != nil {
		return "", errors.Wrapf(err, "hammer %s", strings.Join(args, " "))
	}
	if res.Code != 0 {
		return res.Stdout, &ReturnCodeError{
			Status:  res.Code,
			Stderr:  res.Stderr,
			Command: strings.Join(args, " "),
		}
	}
	return res.Stdout, nil
}

// RunJSON executes a hammer subcommand and decodes stdout into out.
func (h *Hammer) RunJSON(ctx context.Context, out interface{}, args []string, opts Options) error {
	stdout, err := h.Run(ctx, args, opts)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(stdout), out); err != nil {
		return errors.Wrapf(err, "hammer %s: decode output", strings.Join(args, " "))
	}
	return nil
}
