package assets

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/ports"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
)

var _ ports.AssetStore = (*GCSStore)(nil)

// GCSStore sube los binarios a un bucket de Google Cloud Storage y devuelve
// la URL pública permanente del objeto.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore construye el cliente. credentialsFile vacío usa Application
// Default Credentials.
func NewGCSStore(ctx context.Context, bucket, credentialsFile string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("crear cliente GCS: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

// Store sube el objeto bajo designs/<name> y devuelve su URL absoluta.
func (s *GCSStore) Store(ctx context.Context, data []byte, name string) (string, error) {
	object := "designs/" + name
	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = "image/png"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: subir %s: %v", domain.ErrStorage, object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: cerrar writer de %s: %v", domain.ErrStorage, object, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, object), nil
}

// Close libera el cliente subyacente.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
