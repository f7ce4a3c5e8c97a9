package headers

import (
	"fmt"
	"io"
	"strings"
)

// field is one header line. The name keeps the case it was set with so the
// wire form matches what the caller asked for.
type field struct {
	name  string
	value string
}

// Headers is an ordered set of response header fields. Names match
// case-insensitively; serialization follows insertion order.
type Headers struct {
	fields []field
}

func NewHeaders() *Headers {
	return &Headers{
		fields: make([]field, 0, 3),
	}
}

func (h *Headers) index(key string) int {
	for i, f := range h.fields {
		if strings.EqualFold(f.name, key) {
			return i
		}
	}
	return -1
}

// Set replaces the value for a header, keeping its original position
func (h *Headers) Set(key, value string) {
	if i := h.index(key); i >= 0 {
		h.fields[i].value = value
		return
	}
	h.fields = append(h.fields, field{name: key, value: value})
}

// WriteTo writes every field as "Name: value\r\n" followed by the blank
// line that ends the header block.
func (h *Headers) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, f := range h.fields {
		fmt.Fprintf(&b, "%s: %s\r\n", f.name, f.value)
	}
	b.WriteString("\r\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
