package scene_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/scene"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeDesignRepo guarda diseños en memoria y registra las llamadas del flujo
// de ingestión (Create + SetScreenshotURL).
type fakeDesignRepo struct {
	designs     map[string]*entity.Design
	createCalls int
}

func newFakeDesignRepo() *fakeDesignRepo {
	return &fakeDesignRepo{designs: map[string]*entity.Design{}}
}

func (f *fakeDesignRepo) Create(_ context.Context, d *entity.Design) error {
	f.createCalls++
	cp := *d
	f.designs[d.ID] = &cp
	return nil
}

func (f *fakeDesignRepo) GetByID(_ context.Context, id string) (*entity.Design, error) {
	return f.designs[id], nil
}

func (f *fakeDesignRepo) List(_ context.Context, _ bool) ([]*entity.Design, error) {
	out := make([]*entity.Design, 0, len(f.designs))
	for _, d := range f.designs {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDesignRepo) ListByUser(_ context.Context, _ string) ([]*entity.Design, error) {
	return nil, nil
}

func (f *fakeDesignRepo) Replace(_ context.Context, d *entity.Design) error {
	if _, ok := f.designs[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	f.designs[d.ID] = &cp
	return nil
}

func (f *fakeDesignRepo) SetScreenshotURL(_ context.Context, id, url string) error {
	d, ok := f.designs[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.ScreenshotURL = url
	return nil
}

func (f *fakeDesignRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.designs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.designs, id)
	return nil
}

func (f *fakeDesignRepo) DeleteAll(_ context.Context) error {
	f.designs = map[string]*entity.Design{}
	return nil
}

// fakeAssetStore devuelve una URL predecible o falla según se configure.
type fakeAssetStore struct {
	stored map[string][]byte
	fail   bool
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{stored: map[string][]byte{}}
}

func (f *fakeAssetStore) Store(_ context.Context, data []byte, name string) (string, error) {
	if f.fail {
		return "", domain.ErrStorage
	}
	f.stored[name] = data
	return "/uploads/" + name, nil
}

const (
	testOwnerID  = "00000000-0000-0000-0000-00000000abcd"
	testKitchenP = "3f2d5a1c-8b4e-4f6a-9c0d-1e2f3a4b5c6d"
)

const kitchenScene = `{
	"roomType": "Kitchen",
	"items": [
		{"productId": "` + testKitchenP + `", "position": [1, 0, 2], "rotation": [0, 90, 0], "scale": [1, 1, 1]}
	]
}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestIngest_SinScreenshot(t *testing.T) {
	repo := newFakeDesignRepo()
	store := newFakeAssetStore()
	uc := scene.NewIngestUseCase(repo, store, testOwnerID)

	out, err := uc.Ingest(context.Background(), dto.SceneUploadRequest{Scene: kitchenScene})
	require.NoError(t, err)

	assert.Equal(t, "Diseño guardado correctamente", out.Message)
	assert.NotEmpty(t, out.DesignID)
	assert.Nil(t, out.ScreenshotURL, "sin imagen la URL debe ser null, no string vacío")
	assert.Empty(t, store.stored, "no debe escribirse ningún asset")

	saved := repo.designs[out.DesignID]
	require.NotNil(t, saved, "el diseño debe quedar persistido")
	assert.Equal(t, testOwnerID, saved.UserID, "el dueño es el configurado para el canal")
	assert.Equal(t, "Kitchen", saved.RoomType)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, testKitchenP, saved.Items[0].ItemID)
}

func TestIngest_ConScreenshot(t *testing.T) {
	repo := newFakeDesignRepo()
	store := newFakeAssetStore()
	uc := scene.NewIngestUseCase(repo, store, testOwnerID)

	png := []byte{0x89, 'P', 'N', 'G'}
	out, err := uc.Ingest(context.Background(), dto.SceneUploadRequest{
		Scene:      kitchenScene,
		Screenshot: base64.StdEncoding.EncodeToString(png),
	})
	require.NoError(t, err)

	wantName := "design_" + out.DesignID + ".png"
	require.NotNil(t, out.ScreenshotURL)
	assert.Equal(t, "/uploads/"+wantName, *out.ScreenshotURL,
		"el nombre del asset deriva del id del diseño")
	assert.Equal(t, png, store.stored[wantName], "el asset guardado es el PNG decodificado")
	assert.Equal(t, *out.ScreenshotURL, repo.designs[out.DesignID].ScreenshotURL,
		"la URL debe quedar parcheada en el registro")
}

func TestIngest_SceneFaltante(t *testing.T) {
	repo := newFakeDesignRepo()
	uc := scene.NewIngestUseCase(repo, newFakeAssetStore(), testOwnerID)

	_, err := uc.Ingest(context.Background(), dto.SceneUploadRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, repo.createCalls, "nada debe persistirse")
}

func TestIngest_SceneInvalidaNoPersisteNada(t *testing.T) {
	repo := newFakeDesignRepo()
	uc := scene.NewIngestUseCase(repo, newFakeAssetStore(), testOwnerID)

	_, err := uc.Ingest(context.Background(), dto.SceneUploadRequest{Scene: `{"items": [`})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, repo.createCalls)
}

func TestIngest_Base64CorruptoAntesDeEscribir(t *testing.T) {
	repo := newFakeDesignRepo()
	uc := scene.NewIngestUseCase(repo, newFakeAssetStore(), testOwnerID)

	_, err := uc.Ingest(context.Background(), dto.SceneUploadRequest{
		Scene:      kitchenScene,
		Screenshot: "esto-no-es-base64-%%%",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, repo.createCalls,
		"un screenshot corrupto debe detectarse antes de crear el diseño")
}

func TestIngest_FalloDeStorageConservaElDiseno(t *testing.T) {
	repo := newFakeDesignRepo()
	store := newFakeAssetStore()
	store.fail = true
	uc := scene.NewIngestUseCase(repo, store, testOwnerID)

	_, err := uc.Ingest(context.Background(), dto.SceneUploadRequest{
		Scene:      kitchenScene,
		Screenshot: base64.StdEncoding.EncodeToString([]byte("img")),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage))

	// Estado parcial aceptado: el diseño existe sin screenshot.
	require.Equal(t, 1, repo.createCalls)
	for _, d := range repo.designs {
		assert.Empty(t, d.ScreenshotURL)
	}
}
