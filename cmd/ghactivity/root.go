package ghactivity

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ghactivity/pkg/activity"
)

const defaultConfigPath = "ghactivity.yaml"

var version = "dev"

type options struct {
	configPath  string
	envFile     string
	baseURL     string
	timeout     time.Duration
	output      string
	followers   bool
	publicGists bool
	verbose     bool
	writeConfig bool
	force       bool
}

// NewRootCmd returns the Cobra entrypoint for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &options{
		configPath: defaultConfigPath,
		envFile:    ".env",
	}
	root := &cobra.Command{
		Use:   "ghactivity <username>",
		Short: "Show the recent public activity of a GitHub user",
		Long: "ghactivity fetches the public activity feed of a GitHub user and prints one line per event. " +
			"The API token is read from the TOKEN environment variable or from a .env file.",
		Example: "  ghactivity octocat\n" +
			"  ghactivity --followers --public-gists octocat\n" +
			"  ghactivity --output json octocat\n" +
			"  ghactivity --write-config --config ghactivity.yaml",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.writeConfig {
				return cobra.NoArgs(cmd, args)
			}
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			_, err := activity.ValidateUsername(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.writeConfig {
				return writeConfigTemplate(cmd.OutOrStdout(), opts.configPath, opts.force)
			}
			return run(cmd, opts, args[0])
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&opts.followers, "followers", "f", false, "Print the number of followers instead of events")
	flags.BoolVarP(&opts.publicGists, "public-gists", "p", false, "Print the number of public gists instead of events")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format (text|json)")
	flags.StringVar(&opts.configPath, "config", opts.configPath, "Path to config file")
	flags.StringVar(&opts.envFile, "env-file", opts.envFile, "Path to dotenv file holding the token")
	flags.StringVar(&opts.baseURL, "base-url", "", "GitHub API base URL")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Request timeout (e.g. 10s)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	flags.BoolVar(&opts.writeConfig, "write-config", false, "Write a starter config file to --config and exit")
	flags.BoolVar(&opts.force, "force", false, "Overwrite an existing config file with --write-config")
	return root
}

func requireFormat(name, value string) error {
	switch value {
	case activity.FormatText, activity.FormatJSON:
		return nil
	case "":
		return errors.New(name + " is required")
	default:
		return fmt.Errorf("%s must be text or json, got %q", name, value)
	}
}
