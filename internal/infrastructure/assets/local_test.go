package assets_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/infrastructure/assets"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func TestLocalStore_EscribeYDevuelveURLRelativa(t *testing.T) {
	dir := t.TempDir()
	store, err := assets.NewLocalStore(dir, testLogger())
	require.NoError(t, err)

	data := []byte("no-es-una-imagen")
	url, err := store.Store(context.Background(), data, "design_abc.png")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/design_abc.png", url,
		"la URL es relativa a la raíz; la absolutiza la capa de respuesta")

	got, err := os.ReadFile(filepath.Join(dir, "design_abc.png"))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLocalStore_ThumbnailBestEffort(t *testing.T) {
	dir := t.TempDir()
	store, err := assets.NewLocalStore(dir, testLogger())
	require.NoError(t, err)

	// PNG real de 512x512: debe generarse el thumbnail reducido.
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 512, 512))))

	_, err = store.Store(context.Background(), buf.Bytes(), "design_real.png")
	require.NoError(t, err)

	thumbPath := filepath.Join(dir, "design_real_thumb.png")
	f, err := os.Open(thumbPath)
	require.NoError(t, err, "el thumbnail debe existir junto al original")
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width, "el thumbnail se reduce a 256px de ancho")
}

func TestLocalStore_DatosNoDecodificablesNoGeneranThumbnail(t *testing.T) {
	dir := t.TempDir()
	store, err := assets.NewLocalStore(dir, testLogger())
	require.NoError(t, err)

	_, err = store.Store(context.Background(), []byte("basura"), "design_x.png")
	require.NoError(t, err, "un screenshot no decodificable se guarda igual, solo sin thumbnail")

	_, statErr := os.Stat(filepath.Join(dir, "design_x_thumb.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalStore_DirectorioCreadoAlConstruir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "uploads")
	_, err := assets.NewLocalStore(dir, testLogger())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
