package cli

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/lvrtelov/robottelo/internal/ssh"
)

// SSHExecutor runs commands on a fixed remote host, the default transport
// for hammer since the CLI lives on the server.
type SSHExecutor struct {
	Client *ssh.Client
	Host   string
}

func (e *SSHExecutor) Exec(ctx context.Context, command string) (*ExecResult, error) {
	res, err := e.Client.Command(ctx, e.Host, command)
	if err != nil {
		return nil, err
	}
	return &ExecResult{
		Stdout: res.StdoutString(),
		Stderr: res.Stderr,
		Code:   res.Code,
	}, nil
}

// LocalExecutor runs commands through a local shell, for setups where
// hammer is installed next to the harness.
type LocalExecutor struct{}

func (e *LocalExecutor) Exec(ctx context.Context, command string) (*ExecResult, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &ExecResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Code = exitErr.ExitCode()
			return res, nil
		}
		return nil, errors.Wrap(err, "local exec")
	}
	return res, nil
}
