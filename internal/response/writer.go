package response

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Brownie44l1/webserver/internal/headers"
)

// StatusCode represents HTTP status codes
type StatusCode int

// StatusOK is the only status this server puts on the wire. Failed
// lookups are reported through Outcome instead.
const StatusOK StatusCode = 200

// Outcome tags what a response meant, independent of the wire status.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeOK
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "none"
	}
}

// Content types. The png and html labels are the historical ones clients
// of this server already depend on.
const (
	ContentTypePNG         = "images/png"
	ContentTypeHTML        = "txt/html"
	ContentTypeOctetStream = "application/octet-stream"
	ContentTypePlain       = "text/plain"
	ContentTypeNotFound    = "text/html"
)

const NotFoundBody = "<h1>404 Not Found</h1>"

var (
	ErrStatusWritten     = errors.New("status line already written")
	ErrStatusNotWritten  = errors.New("must write status line before headers")
	ErrHeadersNotWritten = errors.New("must write headers before body")
)

// writerState tracks what's been written so far
type writerState int

const (
	stateStart writerState = iota
	stateStatusWritten
	stateHeadersWritten
	stateBodyWritten
)

// Writer writes one HTTP response to an io.Writer
type Writer struct {
	w        io.Writer
	state    writerState
	outcome  Outcome
	hadError bool
}

// NewWriter creates a new response writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		state: stateStart,
	}
}

// WriteStatusLine writes the HTTP status line
func (w *Writer) WriteStatusLine(code StatusCode) error {
	if w.state != stateStart {
		return ErrStatusWritten
	}

	reason := ""
	if code == StatusOK {
		reason = "OK"
	}

	_, err := fmt.Fprintf(w.w, "HTTP/1.1 %d %s\r\n", code, reason)
	if err != nil {
		w.hadError = true
		return err
	}

	w.state = stateStatusWritten
	return nil
}

// WriteHeaders writes all headers and the blank line that ends them
func (w *Writer) WriteHeaders(h *headers.Headers) error {
	if w.state != stateStatusWritten {
		return ErrStatusNotWritten
	}

	if _, err := h.WriteTo(w.w); err != nil {
		w.hadError = true
		return err
	}

	w.state = stateHeadersWritten
	return nil
}

// WriteBody writes the complete response body
func (w *Writer) WriteBody(data []byte) error {
	if w.state != stateHeadersWritten {
		return ErrHeadersNotWritten
	}

	if len(data) > 0 {
		if _, err := w.w.Write(data); err != nil {
			w.hadError = true
			return err
		}
	}

	w.state = stateBodyWritten
	return nil
}

// Send writes a complete 200 response. length goes into Content-Length
// as given; callers pass len(body).
func (w *Writer) Send(contentType string, body []byte, length int) error {
	if err := w.send(contentType, body, length); err != nil {
		return fmt.Errorf("send response: %w", err)
	}
	if w.outcome == OutcomeNone {
		w.outcome = OutcomeOK
	}
	return nil
}

// SendText is Send with a text/plain body
func (w *Writer) SendText(body string) error {
	return w.Send(ContentTypePlain, []byte(body), len(body))
}

// NotFound writes the not-found page. The status line still says 200.
func (w *Writer) NotFound() error {
	w.outcome = OutcomeNotFound
	return w.Send(ContentTypeNotFound, []byte(NotFoundBody), len(NotFoundBody))
}

func (w *Writer) send(contentType string, body []byte, length int) error {
	if err := w.WriteStatusLine(StatusOK); err != nil {
		return err
	}

	h := headers.NewHeaders()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(length))
	h.Set("Connection", "close")

	if err := w.WriteHeaders(h); err != nil {
		return err
	}
	return w.WriteBody(body)
}

// State tracking methods for the connection worker

func (w *Writer) HadError() bool {
	return w.hadError
}

func (w *Writer) Written() bool {
	return w.state != stateStart
}

func (w *Writer) Outcome() Outcome {
	return w.outcome
}
