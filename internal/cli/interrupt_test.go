package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler(t *testing.T) {
	tests := []struct {
		writer io.Writer
		name   string
	}{
		{name: "with custom writer", writer: &bytes.Buffer{}},
		{name: "with nil writer", writer: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInterruptHandler(tt.writer, "Batch")
			assert.NotNil(t, handler)
			assert.NotNil(t, handler.writer)
			assert.False(t, handler.WasInterrupted())
		})
	}
}

func TestInterruptHandler_Trigger(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Batch")

	ctx := handler.HandleInterrupts(context.Background())
	defer handler.Stop()

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled initially")
	default:
	}

	handler.trigger()
	handler.trigger()

	<-ctx.Done()
	assert.True(t, handler.WasInterrupted())
	assert.Equal(t, 1, strings.Count(output.String(), "Batch interrupted!"))
	assert.Contains(t, output.String(), "Results printed so far are complete.")
}

func TestInterruptHandler_StopWithoutSignal(t *testing.T) {
	handler := NewInterruptHandler(&syncBuffer{}, "Batch")
	ctx := handler.HandleInterrupts(context.Background())

	handler.Stop()
	handler.Stop()

	<-ctx.Done()
	assert.False(t, handler.WasInterrupted())
}
