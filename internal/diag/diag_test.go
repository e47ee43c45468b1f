package diag

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (f failingWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestErrWriterPassesThroughOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	w := NewErrWriter(&buf)
	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", buf.String())
	assert.NoError(t, w.Err)
}

func TestErrWriterLatchesFirstError(t *testing.T) {
	boom := errors.New("boom")
	w := NewErrWriter(failingWriter{boom})

	_, err := w.Write([]byte("a"))
	require.Error(t, err)
	firstErr := w.Err

	_, err = w.Write([]byte("b"))
	assert.Equal(t, firstErr, err)
	assert.ErrorIs(t, w.Err, boom)
}

func TestWarnFormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "bad thing: %s", "oops")
	assert.Equal(t, "sl: bad thing: oops\n", buf.String())
}

var _ io.Writer = (*ErrWriter)(nil)
