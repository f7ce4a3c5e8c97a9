package handlers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Brownie44l1/webserver/internal/request"
	"github.com/Brownie44l1/webserver/internal/response"
)

const staticPrefix = "/static"

var ErrOutsideRoot = errors.New("path escapes static directory")

// Static serves files from Dir. The part of the URL path after "/static"
// is appended to Dir verbatim, so "/static/a.png" reads "static//a.png"
// and "/staticfoo" reads "static/foo".
type Static struct {
	Dir string

	// Confine rejects paths that resolve outside Dir. Off by default, in
	// which case ".." segments are followed.
	Confine bool
}

func NewStatic(dir string, confine bool) *Static {
	return &Static{Dir: dir, Confine: confine}
}

func (s *Static) ServeHTTP(w *response.Writer, req *request.Request) {
	name := s.filePath(req.Path)

	body, err := s.readFile(name)
	if err != nil {
		w.NotFound()
		return
	}

	w.Send(ContentType(name), body, len(body))
}

func (s *Static) filePath(urlPath string) string {
	return s.Dir + strings.TrimPrefix(urlPath, staticPrefix)
}

func (s *Static) readFile(name string) ([]byte, error) {
	if s.Confine {
		if err := s.checkRoot(name); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", name)
	}

	body := make([]byte, info.Size())
	if _, err := io.ReadFull(f, body); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return body, nil
}

func (s *Static) checkRoot(name string) error {
	root, err := filepath.Abs(s.Dir)
	if err != nil {
		return err
	}
	target, err := filepath.Abs(name)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(root, target)
	if err != nil {
		return err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrOutsideRoot
	}
	return nil
}

// ContentType infers a content type by substring search on the file path.
// ".png" is checked before ".html" and anything else is a byte stream.
func ContentType(name string) string {
	switch {
	case strings.Contains(name, ".png"):
		return response.ContentTypePNG
	case strings.Contains(name, ".html"):
		return response.ContentTypeHTML
	default:
		return response.ContentTypeOctetStream
	}
}
