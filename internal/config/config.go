package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Download policies accepted by the platform for repositories.
const (
	DownloadPolicyImmediate = "immediate"
	DownloadPolicyOnDemand  = "on_demand"
)

type (
	// Settings is the harness configuration: the target server, the
	// optional capsule and client infrastructure, and harness tuning.
	Settings struct {
		Server  Server  `yaml:"server"`
		Capsule Capsule `yaml:"capsule"`
		Docker  Docker  `yaml:"docker"`
		Clients Clients `yaml:"clients"`
		Harness Harness `yaml:"harness"`
		Log     Log     `yaml:"logger"`
	}

	// Server describes the content-management server under test.
	Server struct {
		Hostname string `yaml:"hostname" env:"ROBOTTELO_SERVER_HOSTNAME"`
		Port     int    `yaml:"port" env:"ROBOTTELO_SERVER_PORT"`
		Scheme   string `yaml:"scheme" env:"ROBOTTELO_SERVER_SCHEME"`
		Username string `yaml:"username" env:"ROBOTTELO_SERVER_USERNAME"`
		Password string `yaml:"password" env:"ROBOTTELO_SERVER_PASSWORD"`
		// VerifyTLS is off by default: lab deployments run on
		// self-signed certificates.
		VerifyTLS bool `yaml:"verify-tls" env:"ROBOTTELO_SERVER_VERIFY_TLS"`

		SSHUsername string `yaml:"ssh-username" env:"ROBOTTELO_SERVER_SSH_USERNAME"`
		SSHKeyFile  string `yaml:"ssh-key-file" env:"ROBOTTELO_SERVER_SSH_KEY_FILE"`
		SSHPassword string `yaml:"ssh-password" env:"ROBOTTELO_SERVER_SSH_PASSWORD"`
		SSHPort     int    `yaml:"ssh-port" env:"ROBOTTELO_SERVER_SSH_PORT"`
	}

	// Capsule describes the replication endpoint used by capsule tests.
	Capsule struct {
		Enabled  bool   `yaml:"enabled" env:"ROBOTTELO_CAPSULE_ENABLED"`
		Hostname string `yaml:"hostname" env:"ROBOTTELO_CAPSULE_HOSTNAME"`
		ID       int    `yaml:"id" env:"ROBOTTELO_CAPSULE_ID"`
	}

	// Docker holds settings for tests against external container registries.
	Docker struct {
		ExternalRegistry string `yaml:"external-registry" env:"ROBOTTELO_DOCKER_EXTERNAL_REGISTRY"`
	}

	// Clients toggles tests that need a registrable client machine.
	Clients struct {
		Enabled  bool   `yaml:"enabled" env:"ROBOTTELO_CLIENTS_ENABLED"`
		Hostname string `yaml:"hostname" env:"ROBOTTELO_CLIENTS_HOSTNAME"`
	}

	// Harness tunes polling, throttling and the hammer invocation.
	Harness struct {
		TaskTimeout    time.Duration `yaml:"task-timeout" env:"ROBOTTELO_TASK_TIMEOUT"`
		PollInterval   time.Duration `yaml:"poll-interval" env:"ROBOTTELO_POLL_INTERVAL"`
		RequestTimeout time.Duration `yaml:"request-timeout" env:"ROBOTTELO_REQUEST_TIMEOUT"`
		RateLimit      float64       `yaml:"rate-limit" env:"ROBOTTELO_RATE_LIMIT"`
		RateBurst      int           `yaml:"rate-burst" env:"ROBOTTELO_RATE_BURST"`
		HammerBin      string        `yaml:"hammer-bin" env:"ROBOTTELO_HAMMER_BIN"`
	}

	// Log carries the klog verbosity used by the cmd entry point.
	Log struct {
		Verbosity int `yaml:"verbosity" env:"ROBOTTELO_LOG_VERBOSITY"`
	}
)

// Load builds the settings from defaults, an optional YAML file, and
// environment variables, in that order of precedence.
func Load(path string) (*Settings, error) {
	s := &Settings{}

	s.Server.Scheme = "https"
	s.Server.SSHUsername = "root"
	s.Server.SSHPort = 22
	s.Harness.TaskTimeout = 30 * time.Minute
	s.Harness.PollInterval = 2 * time.Second
	s.Harness.RequestTimeout = 30 * time.Second
	s.Harness.RateLimit = 10
	s.Harness.RateBurst = 20
	s.Harness.HammerBin = "hammer"
	s.Log.Verbosity = 1

	if path != "" {
		if err := cleanenv.ReadConfig(path, s); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}
	if err := cleanenv.ReadEnv(s); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks that the settings are usable for at least the API suites.
func (s *Settings) Validate() error {
	if s.Server.Hostname == "" {
		return fmt.Errorf("server hostname is required")
	}
	if s.Server.Username == "" || s.Server.Password == "" {
		return fmt.Errorf("server credentials are required")
	}
	if s.Server.Scheme != "http" && s.Server.Scheme != "https" {
		return fmt.Errorf("unknown server scheme: %s", s.Server.Scheme)
	}
	if s.Capsule.Enabled && s.Capsule.Hostname == "" {
		return fmt.Errorf("capsule hostname is required when capsule is enabled")
	}
	if s.Harness.RateLimit <= 0 || s.Harness.RateBurst <= 0 {
		return fmt.Errorf("rate limit and burst must be positive")
	}
	return nil
}

// BaseURL returns the API base URL of the server under test.
func (s *Settings) BaseURL() string {
	host := s.Server.Hostname
	if s.Server.Port != 0 {
		host = fmt.Sprintf("%s:%d", host, s.Server.Port)
	}
	return fmt.Sprintf("%s://%s", s.Server.Scheme, host)
}

// PulpURL returns the published-content URL for a filesystem repo path.
// The path is everything after the pulp http root on disk.
func (s *Settings) PulpURL(repoPath string) string {
	return s.BaseURL() + "/pulp/" + repoPath
}

// CapsuleConfigured reports whether capsule suites can run.
func (s *Settings) CapsuleConfigured() bool {
	return s.Capsule.Enabled && s.Capsule.Hostname != "" && s.Capsule.ID != 0
}

// DockerConfigured reports whether external-registry suites can run.
func (s *Settings) DockerConfigured() bool {
	return s.Docker.ExternalRegistry != ""
}

// ClientsConfigured reports whether client-machine suites can run.
func (s *Settings) ClientsConfigured() bool {
	return s.Clients.Enabled && s.Clients.Hostname != ""
}
