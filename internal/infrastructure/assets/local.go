// Package assets implementa los backends del almacén de screenshots: disco
// local servido estático bajo /uploads, o un bucket de Google Cloud Storage.
// Ambos son intercambiables detrás del puerto ports.AssetStore.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/ports"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/pkg/logger"
)

var _ ports.AssetStore = (*LocalStore)(nil)

const thumbnailWidth = 256

// LocalStore guarda los binarios en disco; las URLs devueltas son relativas a
// la raíz pública ("/uploads/<name>") y las absolutiza la capa de respuesta.
type LocalStore struct {
	dir string
	log *logger.Logger
}

// NewLocalStore crea el directorio de subida si no existe.
func NewLocalStore(dir string, log *logger.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{dir: dir, log: log}, nil
}

// Store escribe el archivo y genera un thumbnail best-effort para listados
// (un fallo del thumbnail no invalida la subida).
func (s *LocalStore) Store(_ context.Context, data []byte, name string) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: escribir %s: %v", domain.ErrStorage, name, err)
	}
	s.writeThumbnail(data, name)
	return "/uploads/" + name, nil
}

func (s *LocalStore) writeThumbnail(data []byte, name string) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		s.log.Warn().Err(err).Str("asset", name).Msg("screenshot no decodificable, sin thumbnail")
		return
	}
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	thumbName := thumbnailName(name)
	if err := imaging.Save(thumb, filepath.Join(s.dir, thumbName)); err != nil {
		s.log.Warn().Err(err).Str("asset", thumbName).Msg("no se pudo guardar el thumbnail")
	}
}

// thumbnailName inserta el sufijo _thumb antes de la extensión.
func thumbnailName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_thumb" + ext
}
