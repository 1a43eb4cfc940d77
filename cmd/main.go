// Package main implements the xfs CLI.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mtth/xfs"
	"github.com/mtth/xfs/internal/config"
	"github.com/mtth/xfs/internal/except"
	"github.com/spf13/cobra"
)

// logLevel is updated once the configuration is loaded.
var logLevel = new(slog.LevelVar)

func init() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if ok {
		fp = filepath.Join(fp, "xfs.log")
	} else {
		var err error
		fp, err = xdg.StateFile("xfs/log")
		if err != nil {
			errs = append(errs, err)
			fp = "xfs.log"
		}
	}

	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stdout
	}

	logLevel.Set(slog.LevelDebug)
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}

	xfs.SetPanicHook(func(loc xfs.Location, msg string) {
		slog.Error("Unrecoverable error.", slog.String("location", loc.String()), slog.String("msg", msg))
		except.Abort(loc, msg)
	})
}

var (
	configPath string
)

func main() {
	ctx := context.Background()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{Use: "xfs", SilenceUsage: true}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration")
	rootCmd.AddCommand(
		newCatCommand(),
		newLinesCommand(),
		newBlockCommand(),
		newSizeCommand(),
		newWriteCommand(),
		newMkdirCommand(),
		newStatCommand(),
		newNormalizeCommand(),
		newMatchCommand(),
	)
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Read(configPath)
	} else {
		cfg, err = config.Find(".")
	}
	if err != nil {
		return nil, err
	}
	logLevel.Set(cfg.LogLevel)
	return cfg, nil
}

// configured wraps a command implementation which requires the configuration.
func configured(
	fn func(cmd *cobra.Command, cfg *config.Config, args []string) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return fn(cmd, cfg, args)
	}
}

// resolve converts a command argument to a path. Relative arguments are interpreted from the
// configuration's root.
func resolve(cfg *config.Config, arg string) xfs.Path {
	if filepath.IsAbs(arg) {
		return xfs.NewPath(arg)
	}
	return cfg.Root.Join(arg)
}
