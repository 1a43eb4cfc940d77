package xfs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture(t *testing.T) {
	release := make(chan struct{})
	f := Dispatch(nil, func() int {
		<-release
		return 42
	})
	assert.False(t, f.Ready())

	close(release)
	<-f.Done()
	assert.True(t, f.Ready())
	assert.Equal(t, 42, f.Wait())
	assert.Equal(t, 42, f.Wait())
}

func TestDispatcher(t *testing.T) {
	t.Run("bounded", func(t *testing.T) {
		var running, peak atomic.Int64
		release := make(chan struct{})
		d := NewDispatcher(2)

		futures := make([]*Future[int], 10)
		for i := range futures {
			futures[i] = Dispatch(d, func() int {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				<-release
				running.Add(-1)
				return i
			})
		}
		require.Eventually(t, func() bool { return running.Load() == 2 }, time.Second, time.Millisecond)
		close(release)
		for i, f := range futures {
			assert.Equal(t, i, f.Wait())
		}
		assert.EqualValues(t, 2, peak.Load())
	})

	t.Run("unbounded", func(t *testing.T) {
		var running atomic.Int64
		release := make(chan struct{})
		d := NewDispatcher(0)

		futures := make([]*Future[bool], 5)
		for i := range futures {
			futures[i] = Dispatch(d, func() bool {
				running.Add(1)
				<-release
				return true
			})
		}
		require.Eventually(t, func() bool { return running.Load() == 5 }, time.Second, time.Millisecond)
		close(release)
		for _, f := range futures {
			assert.True(t, f.Wait())
		}
	})
}

func TestAsync_Equivalence(t *testing.T) {
	memfs := newMemFS(t, map[string]string{
		"/bin":   "\x00\x01\x02\x03\x04",
		"/lines": "one\ntwo\n",
	})
	reader := FileReader{FS: memfs}
	async := AsyncFileReader{Reader: reader}

	for _, fp := range []string{"/bin", "/lines", "/missing"} {
		t.Run(fp, func(t *testing.T) {
			assert.Equal(t, reader.ReadAllBytes(fp), async.ReadAllBytes(fp).Wait())
			assert.Equal(t, reader.ReadAllText(fp), async.ReadAllText(fp).Wait())
			assert.Empty(t, cmp.Diff(reader.ReadAllLines(fp), async.ReadAllLines(fp).Wait()))
			assert.Equal(t, reader.QueryFileSize(fp), async.QueryFileSize(fp).Wait())
			for _, offset := range []int64{0, 2, 4, 5} {
				assert.Equal(t, reader.ReadBlock(fp, 3, offset), async.ReadBlock(fp, 3, offset).Wait())
			}
		})
	}
}

func TestAsyncFileWriter(t *testing.T) {
	memfs := afero.NewMemMapFs()
	reader := FileReader{FS: memfs}
	writer := AsyncFileWriter{Writer: FileWriter{FS: memfs}}

	t.Run("writes", func(t *testing.T) {
		require.True(t, writer.WriteAllText("/text", "abcdef").Wait())
		require.True(t, writer.WriteBlock("/text", []byte("XY"), 2).Wait())
		assert.Equal(t, "abXYef", reader.ReadAllText("/text"))

		require.True(t, writer.WriteAllLines("/lines", []string{"a", "b"}).Wait())
		assert.Equal(t, []string{"a", "b"}, reader.ReadAllLines("/lines"))

		assert.False(t, writer.WriteBlock("/missing", []byte("x"), 0).Wait())
	})

	t.Run("copies arguments", func(t *testing.T) {
		started, release := make(chan struct{}), make(chan struct{})
		d := NewDispatcher(1)
		blocker := Dispatch(d, func() bool {
			close(started)
			<-release
			return true
		})
		<-started

		w := AsyncFileWriter{Writer: writer.Writer, Dispatcher: d}
		data := []byte("original")
		lines := []string{"original"}
		bytesDone := w.WriteAllBytes("/bytes", data)
		linesDone := w.WriteAllLines("/copied-lines", lines)
		copy(data, "mutated!")
		lines[0] = "mutated"

		close(release)
		require.True(t, blocker.Wait())
		require.True(t, bytesDone.Wait())
		require.True(t, linesDone.Wait())
		assert.Equal(t, "original", reader.ReadAllText("/bytes"))
		assert.Equal(t, []string{"original"}, reader.ReadAllLines("/copied-lines"))
	})
}
