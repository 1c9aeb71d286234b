package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/config"
	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/operation"
)

const operationID = "discord"

type app struct {
	configPath string
	logLevel   string
	color      bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "discordop",
		Short:         "Send text or rich embed messages to Discord channels/threads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.discordop/config.json)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&a.color, "color", false, "colorize JSON output")

	cmd.AddCommand(
		newSendCmd(a),
		newPreviewCmd(a),
		newTemplatesCmd(),
	)
	return cmd
}

// setup loads config and installs the default logger. A missing default
// config file is not an error; an explicit --config must exist.
func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFromFile(a.configPath)
	} else {
		a.cfg, err = config.Load()
		if errors.Is(err, fs.ErrNotExist) {
			a.cfg, err = config.DefaultConfig(), nil
			config.ApplyEnvOverrides(a.cfg)
		}
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}

	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: a.cfg.Log.SlogLevel()})
	slog.SetDefault(slog.New(handler))
	return nil
}

func (a *app) newOperation() (operation.Operation, error) {
	factory, ok := operation.GetFactory(operationID)
	if !ok {
		return nil, fmt.Errorf("no operation registered for %q", operationID)
	}
	cfg, err := json.Marshal(struct {
		APIBase   string `json:"apiBase"`
		UserAgent string `json:"userAgent"`
	}{a.cfg.Discord.APIBase, a.cfg.Discord.UserAgent})
	if err != nil {
		return nil, err
	}
	return factory(cfg)
}

func (a *app) writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = pretty.Pretty(b)
	if a.color {
		b = pretty.Color(b, nil)
	}
	_, err = w.Write(b)
	return err
}

func readOptionsFile(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	if path == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}
	return b, nil
}
