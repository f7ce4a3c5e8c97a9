package server

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Brownie44l1/webserver/internal/request"
)

const timeFormat = "2006-01-02 15:04:05.000"

// NewLogger returns the operator log. It is separate from the request echo
// written by Printer.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// sanitizeValue truncates long values before they reach the log
func sanitizeValue(s string) string {
	if len(s) > 100 {
		return s[:100] + "...[truncated]"
	}
	return s
}

// Printer echoes raw requests. One lock serializes every worker's output
// so a request never interleaves with another; it is held only for the
// write itself.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintRequest writes raw up to its first NUL byte
func (p *Printer) PrintRequest(raw []byte) {
	text := request.Text(raw)

	p.mu.Lock()
	fmt.Fprintf(p.w, "Received Request:\n%s\n", text)
	p.mu.Unlock()
}
