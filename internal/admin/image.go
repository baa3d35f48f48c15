package admin

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

var ErrInvalidImage = errors.New("invalid image")

// ImageEncoder turns uploaded files into data URIs so they can be stored inline
// with the record that references them.
type ImageEncoder struct {
	maxBytes int64
}

func NewImageEncoder(maxBytes int64) *ImageEncoder {
	return &ImageEncoder{maxBytes: maxBytes}
}

// Encode reads r fully and returns "data:<mime>;base64,<payload>".
// Content that does not sniff as image/* or exceeds the cap is ErrInvalidImage.
func (e *ImageEncoder) Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, e.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidImage)
	}
	if int64(len(data)) > e.maxBytes {
		return "", fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, e.maxBytes)
	}
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidImage, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// EncodeFile is Encode for a multipart upload. A nil header yields "".
func (e *ImageEncoder) EncodeFile(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}
	if fh.Size > e.maxBytes {
		return "", fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, e.maxBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return e.Encode(f)
}

// MaxBytes is the upload cap, also applied to backup documents.
func (e *ImageEncoder) MaxBytes() int64 { return e.maxBytes }
