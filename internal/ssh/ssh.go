package ssh

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
	"k8s.io/klog/v2"
)

// Config carries everything needed to open a session on a remote host.
type Config struct {
	Username string
	Password string
	KeyFile  string
	Port     int

	// ConnectTimeout bounds the TCP dial; command execution itself is
	// bounded by the caller's context.
	ConnectTimeout time.Duration
}

// Result is the outcome of one remote command. A non-zero Code is data,
// not an error: callers assert on it.
type Result struct {
	Stdout []string
	Stderr string
	Code   int
}

// StdoutString joins stdout back into a single newline-separated string.
func (r *Result) StdoutString() string {
	return strings.Join(r.Stdout, "\n")
}

// Client runs one-shot commands over SSH, opening a fresh connection per
// command. Hosts are lab machines with self-signed everything, so host
// keys are not verified.
type Client struct {
	cfg Config
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Username == "" {
		return nil, errors.New("ssh: username is required")
	}
	if cfg.Password == "" && cfg.KeyFile == "" {
		return nil, errors.New("ssh: either a password or a key file is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 22
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	return &Client{cfg: cfg}, nil
}

// Command executes cmd on host and returns its output and exit status.
// The context cancels the command by tearing down the connection.
func (c *Client) Command(ctx context.Context, host, cmd string) (*Result, error) {
	auth, err := c.authMethods()
	if err != nil {
		return nil, err
	}

	clientCfg := &ssh.ClientConfig{
		User:            c.cfg.Username,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         c.cfg.ConnectTimeout,
	}

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", c.cfg.Port))
	conn, err := ssh.Dial("tcp", addr, clientCfg)
	if err != nil {
		return nil, errors.Wrapf(err, "ssh: dial %s", addr)
	}
	defer conn.Close()

	session, err := conn.NewSession()
	if err != nil {
		return nil, errors.Wrap(err, "ssh: new session")
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	klog.V(2).Infof("ssh %s: %s", host, cmd)

	done := make(chan error, 1)
	go func() {
		done <- session.Run(cmd)
	}()

	select {
	case <-ctx.Done():
		conn.Close()
		<-done
		return nil, errors.Wrapf(ctx.Err(), "ssh: command on %s", host)
	case err = <-done:
	}

	res := &Result{
		Stdout: splitLines(stdout.String()),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			res.Code = exitErr.ExitStatus()
			return res, nil
		}
		return nil, errors.Wrapf(err, "ssh: command on %s", host)
	}
	return res, nil
}

func (c *Client) authMethods() ([]ssh.AuthMethod, error) {
	var auth []ssh.AuthMethod
	if c.cfg.KeyFile != "" {
		key, err := os.ReadFile(c.cfg.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "ssh: read key file")
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, errors.Wrap(err, "ssh: parse private key")
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if c.cfg.Password != "" {
		auth = append(auth, ssh.Password(c.cfg.Password))
	}
	return auth, nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
