package request

import (
	"bytes"
	"errors"
)

var (
	ErrEmptyRequest         = errors.New("empty request")
	ErrMalformedRequestLine = errors.New("malformed request line")
)

// Request is the parsed view of one read from a connection. Only the
// method and path of the request line are extracted; the version token,
// headers and any body are ignored.
type Request struct {
	Method string
	Path   string
	Raw    []byte
}

// IsGet reports whether the method is exactly GET
func (r *Request) IsGet() bool {
	return r.Method == "GET"
}

// Parse extracts the first two whitespace-delimited tokens from raw as the
// method and path. raw is whatever a single read returned; everything after
// the first NUL byte is ignored. Parse never fails on a request that has at
// least a method and a path, whatever the tokens look like.
func Parse(raw []byte) (*Request, error) {
	raw = Text(raw)

	tokens := bytes.FieldsFunc(raw, isSpace)
	switch len(tokens) {
	case 0:
		return nil, ErrEmptyRequest
	case 1:
		return &Request{Method: string(tokens[0]), Raw: raw}, ErrMalformedRequestLine
	}

	return &Request{
		Method: string(tokens[0]),
		Path:   string(tokens[1]),
		Raw:    raw,
	}, nil
}

// Text returns raw up to, not including, its first NUL byte
func Text(raw []byte) []byte {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		return raw[:i]
	}
	return raw
}

// isSpace matches the ASCII whitespace set: space, \t, \n, \v, \f, \r
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
