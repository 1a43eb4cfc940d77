package xfs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mtth/xfs/internal/fspath"
	"github.com/spf13/afero"
)

// FileReader reads whole files and blocks. Its zero value reads from the host filesystem.
type FileReader struct {
	// FS overrides the filesystem read from.
	FS afero.Fs
}

func (r FileReader) fs() afero.Fs {
	if r.FS != nil {
		return r.FS
	}
	return fileSystem
}

// ReadAllBytes returns a file's contents. It returns an empty slice if the file cannot be opened or
// fully read.
func (r FileReader) ReadAllBytes(fp string) []byte {
	data, err := afero.ReadFile(r.fs(), fp)
	if err != nil {
		return nil
	}
	return data
}

// ReadAllText returns a file's contents as a string, without transcoding. It returns an empty string
// if the file cannot be opened or fully read.
func (r FileReader) ReadAllText(fp string) string {
	return string(r.ReadAllBytes(fp))
}

// ReadAllLines returns a file's lines, without their `\n` terminators. A final line does not need to
// be terminated. Carriage returns are only stripped on Windows, other hosts keep them in the line. It returns an empty slice if the file cannot be opened, and the lines read so far if
// reading fails midway.
func (r FileReader) ReadAllLines(fp string) []string {
	file, err := r.fs().Open(fp)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	br := bufio.NewReader(file)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			if fspath.Host == fspath.Windows {
				line = strings.TrimSuffix(line, "\r")
			}
			lines = append(lines, line)
		}
		if err != nil {
			break
		}
	}
	return lines
}

// ReadBlock returns size bytes starting at offset. It returns an empty slice unless the whole range
// lies within the file, size is positive, and the read succeeds. Use Block to tell these apart.
func (r FileReader) ReadBlock(fp string, size int, offset int64) []byte {
	data, _ := r.Block(fp, size, offset)
	return data
}

// Block is similar to ReadBlock but returns an error when no block could be read. Range violations
// wrap ErrOutOfBounds.
func (r FileReader) Block(fp string, size int, offset int64) ([]byte, error) {
	file, err := r.fs().Open(fp)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileSize, err := fileSizeOf(fp, file)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset >= fileSize || size <= 0 || int64(size) > fileSize-offset {
		return nil, fmt.Errorf("%w: %d byte(s) at offset %d of %s (%d bytes)", ErrOutOfBounds, size, offset, fp, fileSize)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(file, offset, int64(size)), buf); err != nil {
		return nil, fmt.Errorf("unable to read block from %s: %w", fp, err)
	}
	return buf, nil
}

// QueryFileSize returns a file's size in bytes. It returns 0 if the file cannot be opened, which is
// indistinguishable from an empty file. Use Size to tell these apart.
func (r FileReader) QueryFileSize(fp string) int64 {
	size, _ := r.Size(fp)
	return size
}

// Size returns a file's size in bytes. Missing files produce an error matching fs.ErrNotExist and
// directories one wrapping ErrIsDirectory.
func (r FileReader) Size(fp string) (int64, error) {
	file, err := r.fs().Open(fp)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return fileSizeOf(fp, file)
}

func fileSizeOf(fp string, file afero.File) (int64, error) {
	info, err := file.Stat()
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrIsDirectory, fp)
	}
	return info.Size(), nil
}
