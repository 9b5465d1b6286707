package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fraudsight/riskgate"
	"github.com/fraudsight/riskgate/store"
)

var (
	configPath string
	statePath  string
)

var rootCmd = &cobra.Command{
	Use:          "riskgate",
	Short:        "Client for the fraud-risk identity and analytical backends",
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "session state file (default ~/.riskgate/session.json)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// fileConfig is the YAML config file shape. Timeout is a duration string
// ("30s", "2m").
type fileConfig struct {
	IdentityURL   string `yaml:"identity_url"`
	AnalyticalURL string `yaml:"analytical_url"`
	Timeout       string `yaml:"timeout"`
	StateFile     string `yaml:"state_file"`
}

// loadConfig layers defaults, the optional YAML file, and environment
// overrides, in that order.
func loadConfig() (riskgate.Config, string, error) {
	var fc fileConfig
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return riskgate.Config{}, "", fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return riskgate.Config{}, "", fmt.Errorf("parse config: %w", err)
		}
	}

	cfg := riskgate.DefaultConfig()
	if fc.IdentityURL != "" {
		cfg.Identity.BaseURL = fc.IdentityURL
	}
	if fc.AnalyticalURL != "" {
		cfg.Analytical.BaseURL = fc.AnalyticalURL
	}
	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return riskgate.Config{}, "", fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Identity.Timeout = timeout
		cfg.Analytical.Timeout = timeout
	}
	if v := os.Getenv(riskgate.EnvIdentityBaseURL); v != "" {
		cfg.Identity.BaseURL = v
	}
	if v := os.Getenv(riskgate.EnvAnalyticalBaseURL); v != "" {
		cfg.Analytical.BaseURL = v
	}

	state := statePath
	if state == "" {
		state = fc.StateFile
	}
	if state == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return riskgate.Config{}, "", fmt.Errorf("resolve home: %w", err)
		}
		state = filepath.Join(home, ".riskgate", "session.json")
	}

	return cfg, state, nil
}

// newGateway builds a gateway backed by the file session store.
func newGateway(ctx context.Context) (*riskgate.Gateway, error) {
	cfg, state, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(state), 0o700); err != nil {
		return nil, fmt.Errorf("state directory: %w", err)
	}
	sessions, err := store.NewFile(state)
	if err != nil {
		return nil, err
	}

	return riskgate.New().
		WithConfig(cfg).
		WithStore(sessions).
		WithNavigator(riskgate.NavigatorFunc(func() {
			fmt.Fprintln(os.Stderr, "session expired; run `riskgate login`")
		})).
		Build(ctx)
}
