package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler manages graceful shutdown with friendly messages.
type InterruptHandler struct {
	writer      io.Writer
	cancelFunc  context.CancelFunc
	stop        chan struct{}
	task        string
	stopOnce    sync.Once
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler. task names the work
// being interrupted in the shutdown message.
func NewInterruptHandler(writer io.Writer, task string) *InterruptHandler {
	if writer == nil {
		writer = os.Stderr
	}
	return &InterruptHandler{
		writer: writer,
		task:   task,
		stop:   make(chan struct{}),
	}
}

// HandleInterrupts returns a context that is canceled on SIGINT or
// SIGTERM. Call Stop once the work is done.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	h.cancelFunc = cancel

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			h.trigger()
		case <-ctx.Done():
		case <-h.stop:
		}
	}()

	return ctx
}

// Stop releases the signal handler.
func (h *InterruptHandler) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	if h.cancelFunc != nil {
		h.cancelFunc()
	}
}

func (h *InterruptHandler) trigger() {
	h.mu.Lock()
	if !h.interrupted {
		h.interrupted = true
		h.showInterruptMessage()
	}
	h.mu.Unlock()
	if h.cancelFunc != nil {
		h.cancelFunc()
	}
}

// showInterruptMessage displays a friendly interrupt message.
func (h *InterruptHandler) showInterruptMessage() {
	msg := "\n\n" + FormatWarning(h.task+" interrupted!")
	msg += "\n" + FormatInfo("Results printed so far are complete.") + "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
