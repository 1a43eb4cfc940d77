package xfs

import (
	"os"

	"github.com/spf13/afero"
)

const (
	// dirPerm is the mode of directories created by Path.Create.
	dirPerm os.FileMode = 0755
	// filePerm is the mode of files created by FileWriter.
	filePerm os.FileMode = 0644
)

var (
	// fileSystem is the host filesystem. It is swapped out for testing.
	fileSystem afero.Fs = afero.NewOsFs()
	// getwd is swapped out for testing.
	getwd = os.Getwd
)
