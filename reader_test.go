package xfs

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mtth/xfs/internal/fspath"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	memfs := afero.NewMemMapFs()
	for fp, contents := range files {
		require.NoError(t, afero.WriteFile(memfs, fp, []byte(contents), 0644))
	}
	return memfs
}

func TestFileReader_ReadAll(t *testing.T) {
	reader := FileReader{FS: newMemFS(t, map[string]string{
		"/data/hello.txt": "hello\x00world",
		"/data/empty":     "",
	})}

	t.Run("bytes", func(t *testing.T) {
		assert.Equal(t, []byte("hello\x00world"), reader.ReadAllBytes("/data/hello.txt"))
		assert.Empty(t, reader.ReadAllBytes("/data/empty"))
		assert.Empty(t, reader.ReadAllBytes("/data/missing"))
	})

	t.Run("text", func(t *testing.T) {
		assert.Equal(t, "hello\x00world", reader.ReadAllText("/data/hello.txt"))
		assert.Empty(t, reader.ReadAllText("/data/missing"))
	})
}

func TestFileReader_ReadAllLines(t *testing.T) {
	reader := FileReader{FS: newMemFS(t, map[string]string{
		"/terminated":   "a\nb\nc\n",
		"/unterminated": "a\nb\nc",
		"/blank":        "a\n\nb\n",
		"/crlf":         "a\r\nb\r\n",
		"/empty":        "",
	})}

	crlf := []string{"a\r", "b\r"}
	if fspath.Host == fspath.Windows {
		crlf = []string{"a", "b"}
	}
	for fp, want := range map[string][]string{
		"/terminated":   {"a", "b", "c"},
		"/unterminated": {"a", "b", "c"},
		"/blank":        {"a", "", "b"},
		"/crlf":         crlf,
	} {
		t.Run(fp, func(t *testing.T) {
			assert.Empty(t, cmp.Diff(want, reader.ReadAllLines(fp)))
		})
	}

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, reader.ReadAllLines("/empty"))
	})

	t.Run("missing", func(t *testing.T) {
		assert.Empty(t, reader.ReadAllLines("/missing"))
	})
}

func TestFileReader_ReadBlock(t *testing.T) {
	const contents = "0123456789ab"
	defer swapFileSystem(newMemFS(t, map[string]string{"/f": contents}))()
	var reader FileReader

	t.Run("examples", func(t *testing.T) {
		assert.Empty(t, reader.ReadBlock("/f", 10, 5))
		assert.Equal(t, []byte("23456789ab"), reader.ReadBlock("/f", 10, 2))
		assert.Equal(t, []byte("b"), reader.ReadBlock("/f", 1, 11))
		assert.Equal(t, []byte(contents), reader.ReadBlock("/f", 12, 0))
		assert.Empty(t, reader.ReadBlock("/missing", 1, 0))
	})

	t.Run("totality", func(t *testing.T) {
		size := reader.QueryFileSize("/f")
		require.EqualValues(t, len(contents), size)
		for offset := int64(-1); offset <= size+1; offset++ {
			for n := -1; n <= int(size)+1; n++ {
				got := reader.ReadBlock("/f", n, offset)
				if n > 0 && offset >= 0 && offset+int64(n) <= size {
					assert.Equal(t, []byte(contents[offset:offset+int64(n)]), got, "%d@%d", n, offset)
				} else {
					assert.Empty(t, got, "%d@%d", n, offset)
				}
			}
		}
	})
}

func TestFileReader_Block(t *testing.T) {
	memfs := newMemFS(t, map[string]string{"/f": "0123456789ab"})
	require.NoError(t, memfs.Mkdir("/dir", 0755))
	reader := FileReader{FS: memfs}

	for _, tc := range []struct {
		path   string
		size   int
		offset int64
		err    error
	}{
		{"/f", 10, 5, ErrOutOfBounds},
		{"/f", 0, 0, ErrOutOfBounds},
		{"/f", 1, 12, ErrOutOfBounds},
		{"/missing", 1, 0, fs.ErrNotExist},
		{"/dir", 1, 0, ErrIsDirectory},
	} {
		t.Run(fmt.Sprintf("%s %d@%d", tc.path, tc.size, tc.offset), func(t *testing.T) {
			got, err := reader.Block(tc.path, tc.size, tc.offset)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, got)
		})
	}
}

func TestFileReader_Size(t *testing.T) {
	memfs := newMemFS(t, map[string]string{"/f": "12345", "/empty": ""})
	require.NoError(t, memfs.Mkdir("/dir", 0755))
	reader := FileReader{FS: memfs}

	t.Run("file", func(t *testing.T) {
		size, err := reader.Size("/f")
		require.NoError(t, err)
		assert.EqualValues(t, 5, size)
		assert.EqualValues(t, 5, reader.QueryFileSize("/f"))
	})

	t.Run("empty and missing look alike", func(t *testing.T) {
		assert.Zero(t, reader.QueryFileSize("/empty"))
		assert.Zero(t, reader.QueryFileSize("/missing"))
	})

	t.Run("missing is distinguishable", func(t *testing.T) {
		size, err := reader.Size("/empty")
		require.NoError(t, err)
		assert.Zero(t, size)

		_, err = reader.Size("/missing")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := reader.Size("/dir")
		require.ErrorIs(t, err, ErrIsDirectory)
	})
}
