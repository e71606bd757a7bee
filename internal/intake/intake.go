// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package intake accepts the uploaded screenshot from a multipart
// request and holds it as a named temporary object for the lifetime of
// one generation cycle. Nothing here survives the request: the service
// layer releases every asset on success and failure alike.
package intake

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FormField is the multipart field name the upload arrives under.
const FormField = "image"

// maxUploadSize bounds the multipart form parse (25 MB). This is a
// transport limit, not content validation: anything that parses is
// accepted and left for the upstream service to reject.
const maxUploadSize = 25 << 20

// ErrNoFile reports a request with no image attached. It is a client
// fault, surfaced before any upstream work happens.
var ErrNoFile = errors.New("intake: no image file attached")

// Asset is one uploaded screenshot staged on disk.
type Asset struct {
	ID           string
	Path         string
	MimeType     string
	OriginalName string
	Size         int64
}

// Store stages uploads in a directory as uuid-keyed files.
type Store struct {
	dir string
}

// NewStore creates the uploads directory if needed and returns a store
// rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("intake: create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory uploads are staged in.
func (s *Store) Dir() string { return s.dir }

// FromRequest extracts the uploaded image from the request and writes
// it to transient storage. Fails with ErrNoFile when no file is
// attached. The declared MIME type is trusted when present; otherwise
// the content is sniffed.
func (s *Store) FromRequest(r *http.Request) (*Asset, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, ErrNoFile
	}

	file, header, err := r.FormFile(FormField)
	if err != nil {
		return nil, ErrNoFile
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("intake: read upload: %w", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		n := len(data)
		if n > 512 {
			n = 512
		}
		mimeType = http.DetectContentType(data[:n])
	}

	id := uuid.New().String()
	path := filepath.Join(s.dir, id+filepath.Ext(header.Filename))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("intake: stage upload: %w", err)
	}

	return &Asset{
		ID:           id,
		Path:         path,
		MimeType:     mimeType,
		OriginalName: header.Filename,
		Size:         int64(len(data)),
	}, nil
}

// Bytes reads the staged file back into memory.
func (a *Asset) Bytes() ([]byte, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("intake: read staged upload: %w", err)
	}
	return data, nil
}

// Release deletes the staged file. Safe to call more than once: a file
// that is already gone is not an error, so cleanup can never mask a
// pipeline failure with a second fault.
func (a *Asset) Release() error {
	err := os.Remove(a.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("intake: release upload: %w", err)
	}
	return nil
}
