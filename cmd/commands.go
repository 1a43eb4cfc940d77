package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mtth/xfs"
	"github.com/mtth/xfs/internal/config"
	"github.com/mtth/xfs/internal/except"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	errNotFile     = errors.New("not a file")
	errWriteFailed = errors.New("write failed")
	errMkdirFailed = errors.New("unable to create directory")
)

// isTerminal is swapped out for testing.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newCatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cat PATH...",
		Short: "Print files",
		Args:  cobra.MinimumNArgs(1),
		RunE: configured(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			reader := xfs.AsyncFileReader{Dispatcher: cfg.Dispatcher()}
			futures := make([]*xfs.Future[string], len(args))
			var errs []error
			for i, arg := range args {
				p := resolve(cfg, arg)
				if p.Kind() != xfs.KindFile {
					errs = append(errs, fmt.Errorf("%w: %v", errNotFile, p))
					continue
				}
				futures[i] = reader.ReadAllText(p.String())
			}
			for _, future := range futures {
				if future == nil {
					continue
				}
				if _, err := io.WriteString(cmd.OutOrStdout(), future.Wait()); err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		}),
	}
}

func newLinesCommand() *cobra.Command {
	var number bool
	cmd := &cobra.Command{
		Use:   "lines PATH",
		Short: "Print a file's lines",
		Args:  cobra.ExactArgs(1),
		RunE: configured(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			p := resolve(cfg, args[0])
			if p.Kind() != xfs.KindFile {
				return fmt.Errorf("%w: %v", errNotFile, p)
			}
			out := cmd.OutOrStdout()
			for i, line := range (xfs.FileReader{}).ReadAllLines(p.String()) {
				if number {
					fmt.Fprintf(out, "%6d\t", i+1)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&number, "number", "n", false, "prefix lines with their number")
	return cmd
}

func newBlockCommand() *cobra.Command {
	var size int
	var offset int64
	cmd := &cobra.Command{
		Use:   "block PATH",
		Short: "Print a range of bytes from a file",
		Long:  "Print a range of bytes from a file. Bytes are hex-dumped when printing to a terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: configured(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			data, err := (xfs.FileReader{}).Block(resolve(cfg, args[0]).String(), size, offset)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if isTerminal() {
				_, err = io.WriteString(out, hex.Dump(data))
			} else {
				_, err = out.Write(data)
			}
			return err
		}),
	}
	cmd.Flags().IntVarP(&size, "size", "s", 0, "number of bytes to read")
	cmd.Flags().Int64VarP(&offset, "offset", "o", 0, "offset of the first byte")
	except.Require(cmd.MarkFlagRequired("size"))
	return cmd
}

func newSizeCommand() *cobra.Command {
	var human bool
	cmd := &cobra.Command{
		Use:   "size PATH...",
		Short: "Print file sizes",
		Args:  cobra.MinimumNArgs(1),
		RunE: configured(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			var errs []error
			for _, arg := range args {
				p := resolve(cfg, arg)
				size, err := (xfs.FileReader{}).Size(p.String())
				if err != nil {
					errs = append(errs, err)
					continue
				}
				formatted := fmt.Sprint(size)
				if human {
					formatted = humanize.IBytes(uint64(size))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", formatted, p)
			}
			return errors.Join(errs...)
		}),
	}
	cmd.Flags().BoolVarP(&human, "human", "H", false, "print human-readable sizes")
	return cmd
}

func newWriteCommand() *cobra.Command {
	var offset int64
	var lines bool
	cmd := &cobra.Command{
		Use:   "write PATH",
		Short: "Write standard input to a file",
		Long: "Write standard input to a file, replacing its contents. When an offset is set, the " +
			"existing file is updated in place instead.",
		Args: cobra.ExactArgs(1),
		RunE: configured(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			p := resolve(cfg, args[0])
			writer := xfs.AsyncFileWriter{Dispatcher: cfg.Dispatcher()}
			var done *xfs.Future[bool]
			switch {
			case cmd.Flags().Changed("offset"):
				done = writer.WriteBlock(p.String(), data, offset)
			case lines:
				text := strings.TrimSuffix(string(data), "\n")
				var split []string
				if text != "" {
					split = strings.Split(text, "\n")
				}
				done = writer.WriteAllLines(p.String(), split)
			default:
				done = writer.WriteAllBytes(p.String(), data)
			}
			if !done.Wait() {
				return fmt.Errorf("%w: %v", errWriteFailed, p)
			}
			slog.Info("Wrote file.", slog.String("path", p.String()), slog.Int("size", len(data)))
			return nil
		}),
	}
	cmd.Flags().Int64VarP(&offset, "offset", "o", 0, "update the file in place from this offset")
	cmd.Flags().BoolVarP(&lines, "lines", "l", false, "write stdin as lines, each terminated by a newline")
	cmd.MarkFlagsMutuallyExclusive("offset", "lines")
	return cmd
}

func newMkdirCommand() *cobra.Command {
	var parents bool
	cmd := &cobra.Command{
		Use:   "mkdir PATH...",
		Short: "Create directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: configured(func(_ *cobra.Command, cfg *config.Config, args []string) error {
			var errs []error
			for _, arg := range args {
				p := resolve(cfg, arg)
				create := p.Create
				if parents {
					create = p.CreateAll
				}
				if !create() {
					errs = append(errs, fmt.Errorf("%w: %v", errMkdirFailed, p))
				}
			}
			return errors.Join(errs...)
		}),
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parents")
	return cmd
}

func newStatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stat PATH...",
		Short: "Show what paths refer to",
		Args:  cobra.MinimumNArgs(1),
		RunE: configured(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			for _, arg := range args {
				p := resolve(cfg, arg)
				fmt.Fprintf(cmd.OutOrStdout(), "%v\t%s\t%v\n", p.Kind(), p.Extension(), p)
			}
			return nil
		}),
	}
}

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize PATH...",
		Short: "Normalize paths",
		Long:  "Normalize paths using the configured profile. The filesystem is not accessed.",
		Args:  cobra.MinimumNArgs(1),
		RunE: configured(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			profile := cfg.PathProfile()
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), profile.Normalize(arg))
			}
			return nil
		}),
	}
}

func newMatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN PATH...",
		Short: "Print paths matching a glob pattern",
		Args:  cobra.MinimumNArgs(2),
		RunE: configured(func(cmd *cobra.Command, cfg *config.Config, args []string) error {
			for _, arg := range args[1:] {
				p := resolve(cfg, arg)
				ok, err := p.Match(args[0])
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
			}
			return nil
		}),
	}
}
