package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Status prints progress lines. On a terminal each update overwrites
// the previous one.
type Status struct {
	mu       sync.Mutex
	w        io.Writer
	terminal bool
	width    int
}

// NewStatus creates a status printer for f
func NewStatus(f *os.File) *Status {
	fd := f.Fd()
	return newStatus(f, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

func newStatus(w io.Writer, terminal bool) *Status {
	return &Status{w: w, terminal: terminal}
}

// Update prints msg
func (s *Status) Update(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.terminal {
		fmt.Fprintln(s.w, msg)
		return
	}

	pad := ""
	if n := s.width - len(msg); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(s.w, "\r%s%s", msg, pad)
	s.width = len(msg)
}

// Done ends the current status line
func (s *Status) Done() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminal && s.width > 0 {
		fmt.Fprintln(s.w)
		s.width = 0
	}
}
