package xfs

import (
	"log/slog"
	"testing"

	"github.com/mtth/xfs/internal/effect"
	"github.com/mtth/xfs/internal/fspath"
	"github.com/spf13/afero"
)

func swapFileSystem(fsys afero.Fs) func() {
	return effect.Swap(&fileSystem, fsys)
}

func swapDefaultLogger(logger *slog.Logger) func() {
	old := slog.Default()
	slog.SetDefault(logger)
	return func() { slog.SetDefault(old) }
}

// requireUnix skips tests which spell out paths with forward slashes.
func requireUnix(t *testing.T) {
	t.Helper()
	if fspath.Host != fspath.Unix {
		t.Skip("Unix-only paths")
	}
}
