// Copyright (c) 2026 Foodgram. All rights reserved.

/*
Package media decodes inbound embedded images into stored file references.

Recipe and avatar images arrive embedded in the JSON payload as base64 data
URIs ("data:image/png;base64,...."). This package decodes them, writes the
bytes under the configured media root, and hands the resulting relative
reference to the domain layer. The composition engine itself only ever sees
the reference string.
*/
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
	"github.com/IvanZabelin/foodgram/internal/platform/constants"
)

const dataURIPrefix = "data:image/"

// allowed image extensions; anything else in the data URI header is rejected.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpeg": true,
	"jpg":  true,
	"gif":  true,
	"webp": true,
}

// Store writes decoded images beneath a single root directory.
type Store struct {
	root string
}

// NewStore creates a media store rooted at the given directory,
// creating it if necessary.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("media: failed to create root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// SaveDataURI decodes a base64 image data URI and writes it under
// root/subdir, returning the relative file reference (e.g. "recipes/<id>.png").
//
// A payload that is not a well-formed image data URI is a validation
// failure, not a server error.
func (store *Store) SaveDataURI(subdir, dataURI string) (string, error) {
	ext, payload, err := splitDataURI(dataURI)
	if err != nil {
		return "", err
	}

	// The size check runs on the encoded payload so an oversize image is
	// rejected before any decode buffer is allocated.
	if base64.StdEncoding.DecodedLen(len(payload)) > constants.MaxMediaBytes {
		return "", apperr.ValidationError("Image is too large")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", apperr.ValidationError("Invalid image encoding")
	}

	dir := filepath.Join(store.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("media: failed to create directory %s: %w", dir, err)
	}

	name := uuid.New().String() + "." + ext
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("media: failed to write image: %w", err)
	}

	return subdir + "/" + name, nil
}

// Remove deletes a previously stored reference. A missing file is not an
// error: the reference is gone either way.
func (store *Store) Remove(reference string) error {
	if reference == "" {
		return nil
	}
	err := os.Remove(filepath.Join(store.root, filepath.FromSlash(reference)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("media: failed to remove %s: %w", reference, err)
	}
	return nil
}

// IsDataURI reports whether the value looks like an embedded image rather
// than an already-stored reference.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, dataURIPrefix)
}

// splitDataURI validates the "data:image/<ext>;base64,<payload>" shape and
// returns the extension and the raw base64 payload.
func splitDataURI(dataURI string) (ext, payload string, err error) {
	if !strings.HasPrefix(dataURI, dataURIPrefix) {
		return "", "", apperr.ValidationError("Invalid image format")
	}

	header, payload, found := strings.Cut(dataURI, ";base64,")
	if !found || payload == "" {
		return "", "", apperr.ValidationError("Invalid image format")
	}

	ext = strings.TrimPrefix(header, dataURIPrefix)
	if !allowedExtensions[ext] {
		return "", "", apperr.ValidationError("Unsupported image type")
	}
	if ext == "jpg" {
		ext = "jpeg"
	}

	return ext, payload, nil
}
