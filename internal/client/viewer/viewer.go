// Package viewer adapts the document display surface: it decodes the data
// URIs returned by the paper service, opens the payload with the PDF reader
// to make sure it is renderable, and writes downloaded copies to disk.
package viewer

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// ErrMalformedDocument marks a terminal content error: the payload arrived
// but cannot be rendered. The attempt is abandoned, never retried.
var ErrMalformedDocument = errors.New("malformed document payload")

// DecodeDataURI turns "data:application/pdf;base64,..." (or a bare base64
// string) into raw document bytes.
func DecodeDataURI(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty content", ErrMalformedDocument)
	}
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, fmt.Errorf("%w: data URI without payload", ErrMalformedDocument)
		}
		s = s[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return raw, nil
}

// Document is an opened, validated paper ready for paginated display.
type Document struct {
	Pages int
	raw   []byte
}

// Bytes returns the raw document content.
func (d *Document) Bytes() []byte { return d.raw }

// Open parses raw PDF bytes and resolves the page count. A payload the
// reader cannot parse is reported as ErrMalformedDocument.
func Open(raw []byte) (*Document, error) {
	r, err := pdf.NewReader(bytes.NewReader(raw), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	pages, err := pagetree.NumPages(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &Document{Pages: pages, raw: raw}, nil
}

// SaveAs writes a downloaded document under dir with the suggested filename
// and returns the full path. The directory is created if needed.
func SaveAs(dir, filename string, raw []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, raw, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
