package ghactivity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ghactivity/pkg/activity"
	"ghactivity/pkg/core"
	"ghactivity/pkg/providers/github"
)

func run(cmd *cobra.Command, opts *options, user string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := core.NewLogger("cli", core.LogOptions{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    cmd.ErrOrStderr(),
	})

	token, err := core.LoadToken(opts.envFile, cfg.GitHub.TokenEnv)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := github.NewTokenClient(ctx, github.ClientConfig{
		BaseURL:    cfg.GitHub.BaseURL,
		APIVersion: cfg.GitHub.APIVersion,
		UserAgent:  cfg.GitHub.UserAgent,
		Timeout:    cfg.GitHub.Timeout(),
	}, token)
	if err != nil {
		return err
	}

	svc := activity.NewService(client, logger)
	renderer := &activity.Renderer{
		Out:    cmd.OutOrStdout(),
		Format: cfg.Output.Format,
		Logger: logger,
	}

	if opts.followers || opts.publicGists {
		logger.Debug("fetching profile", "user", user)
		profile, err := svc.Profile(ctx, user)
		if err != nil {
			return err
		}
		return renderer.RenderProfile(user, profile, opts.followers, opts.publicGists)
	}

	logger.Debug("fetching events", "user", user)
	events, err := svc.ListEvents(ctx, user)
	if err != nil {
		return err
	}
	return renderer.RenderEvents(user, events)
}

// loadConfig reads the config file and applies flag overrides. A missing
// file is ignored unless --config was given explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (core.AppConfig, error) {
	cfg := core.DefaultAppConfig()
	if path := strings.TrimSpace(opts.configPath); path != "" {
		loaded, err := core.LoadAppConfig(path)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		default:
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.GitHub.BaseURL = strings.TrimSpace(opts.baseURL)
	}
	if flags.Changed("timeout") {
		if opts.timeout < time.Millisecond {
			return cfg, fmt.Errorf("--timeout must be at least 1ms, got %s", opts.timeout)
		}
		cfg.GitHub.TimeoutMS = opts.timeout.Milliseconds()
	}
	if flags.Changed("output") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(opts.output))
		if err := requireFormat("--output", cfg.Output.Format); err != nil {
			return cfg, err
		}
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
