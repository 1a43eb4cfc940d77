package xfs

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
)

// FileWriter writes whole files and blocks. Its zero value writes to the host filesystem.
//
// Writes are not atomic: a failed write may leave partial contents behind.
type FileWriter struct {
	// FS overrides the filesystem written to.
	FS afero.Fs
}

func (w FileWriter) fs() afero.Fs {
	if w.FS != nil {
		return w.FS
	}
	return fileSystem
}

// WriteAllBytes replaces a file's contents with data, creating the file if needed. It returns true
// iff the write succeeded.
func (w FileWriter) WriteAllBytes(fp string, data []byte) bool {
	return w.overwrite(fp, func(wr io.Writer) error {
		_, err := wr.Write(data)
		return err
	})
}

// WriteAllText replaces a file's contents with text, creating the file if needed. It returns true
// iff the write succeeded.
func (w FileWriter) WriteAllText(fp string, text string) bool {
	return w.overwrite(fp, func(wr io.Writer) error {
		_, err := io.WriteString(wr, text)
		return err
	})
}

// WriteAllLines replaces a file's contents with lines, each followed by a newline. Writing stops at
// the first line which fails, lines before it are kept.
func (w FileWriter) WriteAllLines(fp string, lines []string) bool {
	return w.overwrite(fp, func(wr io.Writer) error {
		return writeLines(wr, lines)
	})
}

func writeLines(wr io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(wr, line); err != nil {
			return err
		}
		if _, err := io.WriteString(wr, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteBlock writes data at offset inside an existing file, without truncating it. It returns false
// if the file does not exist. Writing past the end of the file follows the host's semantics.
func (w FileWriter) WriteBlock(fp string, data []byte, offset int64) bool {
	if offset < 0 {
		return false
	}
	return w.update(fp, os.O_RDWR, func(file afero.File) error {
		if _, err := file.Seek(offset, io.SeekStart); err != nil {
			return err
		}
		_, err := file.Write(data)
		return err
	})
}

func (w FileWriter) overwrite(fp string, fn func(io.Writer) error) bool {
	return w.update(fp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, func(file afero.File) error {
		return fn(file)
	})
}

func (w FileWriter) update(fp string, flag int, fn func(afero.File) error) bool {
	file, err := w.fs().OpenFile(fp, flag, filePerm)
	if err != nil {
		return false
	}
	err = fn(file)
	return errors.Join(err, file.Close()) == nil
}
