package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader provides context-aware line reading that can be
// interrupted.
type NonBlockingReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewNonBlockingReader creates a new non-blocking reader.
func NewNonBlockingReader(reader io.Reader) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadString reads a string until delim, respecting context cancellation.
// A canceled read leaves its goroutine blocked until the underlying
// reader returns.
func (r *NonBlockingReader) ReadString(ctx context.Context, delim byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInputCancelled
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString(delim)
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		return res.value, res.err
	}
}

// ReadLine reads a trimmed line. A final line without a trailing newline
// is returned together with io.EOF.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	line, err := r.ReadString(ctx, '\n')
	return strings.TrimSpace(line), err
}
