package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tickbridge/internal/adapters/ticktick"
	"tickbridge/internal/config"
	"tickbridge/internal/ports"
)

var (
	authMethodFlag string
	verbose        bool
	gateway        ports.TaskGateway
)

var rootCmd = &cobra.Command{
	Use:   "tickbridge-cli",
	Short: "CLI for the TickTick task service",
	Long: `tickbridge-cli is a command-line interface for TickTick tasks,
projects, tags and habits.

It talks to the official token/OAuth2 API by default and can use the
web session API (username/password sign-on) for the surfaces the
official API does not expose: tags, habits, focus statistics.

Credentials come from TICKBRIDGE_* environment variables or
~/.config/tickbridge/config.toml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if authMethodFlag != "" {
			cfg.AuthMethod = authMethodFlag
		}
		method, err := cfg.Method()
		if err != nil {
			return err
		}

		logger := zap.NewNop()
		if verbose {
			if logger, err = zap.NewDevelopment(); err != nil {
				return err
			}
		}

		client := ticktick.NewClient(cfg,
			ticktick.WithLogger(logger),
			ticktick.WithBaseURLs(cfg.OpenBaseURL, cfg.SessionBaseURL),
		)
		gateway = ticktick.NewRepository(client, method)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&authMethodFlag, "auth", "a", "", "auth method: token, oauth2 or session")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log API calls")
}

// GetGateway returns the initialized task gateway
func GetGateway() ports.TaskGateway {
	return gateway
}
