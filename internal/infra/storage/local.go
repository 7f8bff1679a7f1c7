package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"event-booking/internal/pkg/config"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const sniffLen = 512

// extensions maps the accepted sniffed content types to the stored file extension.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var (
	ErrImageTooLarge    = errors.New("image exceeds the upload size limit")
	ErrUnsupportedImage = errors.New("image must be jpeg, png, gif or webp")
	ErrEmptyImage       = errors.New("image is empty")
	ErrForeignImageRef  = errors.New("image reference is outside the upload path")
)

// LocalImageStore writes images under a directory and serves them from PublicPath.
type LocalImageStore struct {
	dir        string
	publicPath string
	maxBytes   int64
}

func NewLocalImageStore(cfg config.UploadConfig) (*LocalImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalImageStore{
		dir:        cfg.Dir,
		publicPath: strings.TrimSuffix(cfg.PublicPath, "/"),
		maxBytes:   cfg.MaxBytes,
	}, nil
}

func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save sniffs the content instead of trusting the client-declared type.
func (s *LocalImageStore) Save(ctx context.Context, img shared.ImageUpload) (string, error) {
	if img.Content == nil || img.Size == 0 {
		return "", errs.Mark(ErrEmptyImage, errs.ErrInvalidImage)
	}
	if s.maxBytes > 0 && img.Size > s.maxBytes {
		return "", errs.Mark(ErrImageTooLarge, errs.ErrInvalidImage)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(img.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", errs.Wrap(err, "failed to read image")
	}
	head = head[:n]
	if n == 0 {
		return "", errs.Mark(ErrEmptyImage, errs.ErrInvalidImage)
	}

	ext, ok := extensions[http.DetectContentType(head)]
	if !ok {
		return "", errs.Mark(ErrUnsupportedImage, errs.ErrInvalidImage)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	full := filepath.Join(s.dir, name)
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errs.Wrap(err, "failed to create image file")
	}

	src := io.MultiReader(bytes.NewReader(head), img.Content)
	if s.maxBytes > 0 {
		src = io.LimitReader(src, s.maxBytes+1)
	}
	written, err := io.Copy(f, src)
	closeErr := f.Close()

	switch {
	case err != nil:
		_ = os.Remove(full)
		return "", errs.Wrap(err, "failed to write image file")
	case closeErr != nil:
		_ = os.Remove(full)
		return "", errs.Wrap(closeErr, "failed to close image file")
	case s.maxBytes > 0 && written > s.maxBytes:
		// the declared size lied
		_ = os.Remove(full)
		return "", errs.Mark(ErrImageTooLarge, errs.ErrInvalidImage)
	}

	return s.publicPath + "/" + name, nil
}

// Remove deletes a stored image. Missing files are not an error.
func (s *LocalImageStore) Remove(_ context.Context, ref string) error {
	name, err := s.nameOf(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(err, "failed to remove image file")
	}
	return nil
}

func (s *LocalImageStore) nameOf(ref string) (string, error) {
	prefix := s.publicPath + "/"
	if !strings.HasPrefix(ref, prefix) {
		return "", ErrForeignImageRef
	}
	name := strings.TrimPrefix(ref, prefix)
	if name == "" || name != path.Base(name) || name == "." || name == ".." {
		return "", ErrForeignImageRef
	}
	return name, nil
}
