// Package storage implementa el bucket de logos sobre Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/tu-usuario/quotation-pro/internal/domain"
)

// Tamaño máximo aceptado para el logo.
const maxLogoSizeBytes int64 = 5 * 1024 * 1024

var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
}

// GCSLogoStorage sube logos a un bucket público de GCS y devuelve la URL
// del objeto. Las credenciales se resuelven con Application Default Credentials.
type GCSLogoStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCSLogoStorage construye el adaptador para el bucket dado.
func NewGCSLogoStorage(ctx context.Context, bucket string) (*GCSLogoStorage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket vacío")
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: crear cliente GCS: %w", err)
	}
	return &GCSLogoStorage{client: client, bucket: bucket}, nil
}

// Upload sube el logo bajo company-logos/<uuid><ext> y devuelve su URL
// pública. Rechaza tipos de contenido no soportados y archivos de más de 5MB.
func (s *GCSLogoStorage) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	ext, ok := logoExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: tipo de archivo no permitido: %s", domain.ErrInvalidInput, contentType)
	}

	key := path.Join("company-logos", uuid.New().String()+ext)
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	n, err := io.Copy(w, io.LimitReader(r, maxLogoSizeBytes+1))
	if err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: subir %s: %w", filename, err)
	}
	if n > maxLogoSizeBytes {
		_ = w.Close()
		return "", fmt.Errorf("%w: el logo supera el máximo de 5MB", domain.ErrInvalidInput)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: cerrar objeto %s: %w", key, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key), nil
}

// Close libera el cliente GCS.
func (s *GCSLogoStorage) Close() error {
	return s.client.Close()
}
