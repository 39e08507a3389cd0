package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/lvrtelov/robottelo/internal/api"
	"github.com/lvrtelov/robottelo/internal/cli"
	"github.com/lvrtelov/robottelo/internal/config"
	"github.com/lvrtelov/robottelo/internal/ssh"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		klog.Errorf("robottelo: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "robottelo",
		Short:         "Acceptance harness for a Katello/Foreman-style content platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	global := pflag.NewFlagSet("global", pflag.ContinueOnError)
	global.StringVarP(&configPath, "config", "c", "", "path to settings YAML")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	global.AddGoFlagSet(klogFlags)

	root.PersistentFlags().AddFlagSet(global)

	root.AddCommand(newCheckupCmd(&configPath))
	root.AddCommand(newSettingsCmd(&configPath))
	return root
}

func loadSettings(path string) (*config.Settings, error) {
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// newCheckupCmd verifies the deployment is reachable over every channel
// the suites use: API, hammer, and SSH.
func newCheckupCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "checkup",
		Short: "Verify API, hammer and SSH connectivity to the deployment",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(*configPath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

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
			if err != nil {
				return err
			}
			if err := client.Ping(ctx); err != nil {
				return fmt.Errorf("api ping: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "api: ok")

			sshClient, err := ssh.NewClient(ssh.Config{
				Username: settings.Server.SSHUsername,
				Password: settings.Server.SSHPassword,
				KeyFile:  settings.Server.SSHKeyFile,
				Port:     settings.Server.SSHPort,
			})
			if err != nil {
				return err
			}
			if _, err := sshClient.Command(ctx, settings.Server.Hostname, "true"); err != nil {
				return fmt.Errorf("ssh to server: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ssh server: ok")

			if settings.CapsuleConfigured() {
				if _, err := sshClient.Command(ctx, settings.Capsule.Hostname, "true"); err != nil {
					return fmt.Errorf("ssh to capsule: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ssh capsule: ok")
			}

			hammer := cli.NewHammer(
				&cli.SSHExecutor{Client: sshClient, Host: settings.Server.Hostname},
				cli.HammerConfig{
					Bin:      settings.Harness.HammerBin,
					Username: settings.Server.Username,
					Password: settings.Server.Password,
				},
			)
			if _, err := hammer.Run(ctx, []string{"ping"}, nil); err != nil {
				return fmt.Errorf("hammer ping: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "hammer: ok")
			return nil
		},
	}
}

// newSettingsCmd prints the effective settings with credentials redacted.
func newSettingsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			redacted := *settings
			if redacted.Server.Password != "" {
				redacted.Server.Password = "<redacted>"
			}
			if redacted.Server.SSHPassword != "" {
				redacted.Server.SSHPassword = "<redacted>"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "server:   %s (%s)\n", redacted.BaseURL(), redacted.Server.Username)
			fmt.Fprintf(out, "ssh:      %s@%s:%d\n", redacted.Server.SSHUsername, redacted.Server.Hostname, redacted.Server.SSHPort)
			fmt.Fprintf(out, "capsule:  enabled=%v hostname=%s id=%d\n", redacted.Capsule.Enabled, redacted.Capsule.Hostname, redacted.Capsule.ID)
			fmt.Fprintf(out, "docker:   registry=%s\n", redacted.Docker.ExternalRegistry)
			fmt.Fprintf(out, "clients:  enabled=%v hostname=%s\n", redacted.Clients.Enabled, redacted.Clients.Hostname)
			fmt.Fprintf(out, "harness:  task-timeout=%s poll=%s rate=%.0f/%d hammer=%s\n",
				redacted.Harness.TaskTimeout, redacted.Harness.PollInterval,
				redacted.Harness.RateLimit, redacted.Harness.RateBurst, redacted.Harness.HammerBin)
			return nil
		},
	}
}
