// Package ioctl puts stdin into raw mode and delivers individual
// keystrokes to a callback, for the interactive keyboard-triggered synth
// in cmd/dsplive. It mirrors the TerminalHost pattern from the teacher
// engine's terminal_host.go, trimmed to the single responsibility
// dsplive needs: raw keys in, nothing echoed back.
package ioctl

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// KeyHost reads raw stdin bytes on its own goroutine and forwards each
// one to OnKey. Only instantiated in cmd/dsplive's main — never in
// tests.
type KeyHost struct {
	OnKey func(b byte)

	fd           int
	oldTermState *term.State
	stopCh       chan struct{}
	done         chan struct{}
	stopOnce     sync.Once
}

// NewKeyHost constructs a host that calls onKey for every byte read
// from stdin once Start is called.
func NewKeyHost(onKey func(b byte)) *KeyHost {
	return &KeyHost{
		OnKey:  onKey,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins reading in a
// background goroutine. Call Stop to restore the terminal.
func (h *KeyHost) Start() error {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		return fmt.Errorf("ioctl: failed to set raw mode: %w", err)
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		close(h.done)
		return fmt.Errorf("ioctl: failed to set nonblocking stdin: %w", err)
	}

	go h.readLoop()
	return nil
}

func (h *KeyHost) readLoop() {
	defer close(h.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			h.OnKey(buf[0])
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
	}
}

// Stop signals the read goroutine to exit and restores the terminal's
// previous state.
func (h *KeyHost) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		<-h.done
		if h.oldTermState != nil {
			_ = term.Restore(h.fd, h.oldTermState)
		}
	})
}
