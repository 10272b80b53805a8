package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/scene"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/usecase"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	apphttp "github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type memDesignRepo struct {
	designs map[string]*entity.Design
	order   []string
}

func newMemDesignRepo() *memDesignRepo {
	return &memDesignRepo{designs: map[string]*entity.Design{}}
}

func (m *memDesignRepo) Create(_ context.Context, d *entity.Design) error {
	cp := *d
	m.designs[d.ID] = &cp
	m.order = append(m.order, d.ID)
	return nil
}

func (m *memDesignRepo) GetByID(_ context.Context, id string) (*entity.Design, error) {
	return m.designs[id], nil
}

func (m *memDesignRepo) List(_ context.Context, recent bool) ([]*entity.Design, error) {
	out := make([]*entity.Design, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.designs[m.order[i]])
	}
	if recent && len(out) > 10 {
		out = out[:10]
	}
	return out, nil
}

func (m *memDesignRepo) ListByUser(_ context.Context, userID string) ([]*entity.Design, error) {
	var out []*entity.Design
	for _, id := range m.order {
		if d := m.designs[id]; d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDesignRepo) Replace(_ context.Context, d *entity.Design) error {
	if _, ok := m.designs[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	m.designs[d.ID] = &cp
	return nil
}

func (m *memDesignRepo) SetScreenshotURL(_ context.Context, id, url string) error {
	d, ok := m.designs[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.ScreenshotURL = url
	return nil
}

func (m *memDesignRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.designs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.designs, id)
	return nil
}

func (m *memDesignRepo) DeleteAll(_ context.Context) error {
	m.designs = map[string]*entity.Design{}
	m.order = nil
	return nil
}

type memAssetStore struct{}

func (memAssetStore) Store(_ context.Context, _ []byte, name string) (string, error) {
	return "/uploads/" + name, nil
}

const ownerID = "00000000-0000-0000-0000-0000000000aa"

// buildDesignApp monta las rutas de diseños con repos en memoria,
// sin middleware de auth (aquí se prueban los handlers, no RBAC).
func buildDesignApp(repo *memDesignRepo, publicBase string) *fiber.App {
	designUC := usecase.NewDesignUseCase(repo, ownerID)
	ingestUC := scene.NewIngestUseCase(repo, memAssetStore{}, ownerID)
	h := apphttp.NewDesignHandler(designUC, ingestUC, publicBase)

	app := fiber.New()
	designs := app.Group("/api/designs")
	designs.Post("/design-saved", h.SceneSaved)
	designs.Get("/user/:userId", h.ListByUser)
	designs.Get("/", h.List)
	designs.Get("/:id", h.GetByID)
	designs.Post("/", h.Create)
	designs.Put("/:id", h.Update)
	designs.Delete("/:id", h.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingestión de escenas
// ──────────────────────────────────────────────────────────────────────────────

func TestSceneSaved_GuardaDiseno(t *testing.T) {
	repo := newMemDesignRepo()
	app := buildDesignApp(repo, "")

	resp := postJSON(t, app, "/api/designs/design-saved", fiber.Map{
		"scene": `{"roomType": "Kitchen", "items": [
			{"productId": "3f2d5a1c-8b4e-4f6a-9c0d-1e2f3a4b5c6d", "position": [1, 0, 2], "rotation": [0, 90, 0], "scale": [1, 1, 1]}
		]}`,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Diseño guardado correctamente", body["message"])
	assert.NotEmpty(t, body["designId"])
	assert.Nil(t, body["screenshotUrl"], "sin imagen la URL debe serializarse como null")

	design, ok := body["design"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Kitchen", design["roomType"])
	assert.Equal(t, ownerID, design["userId"])
}

func TestSceneSaved_SceneFaltanteRetorna400(t *testing.T) {
	app := buildDesignApp(newMemDesignRepo(), "")

	resp := postJSON(t, app, "/api/designs/design-saved", fiber.Map{"screenshot": ""})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestSceneSaved_SceneMalFormadaRetorna400ConMotivo(t *testing.T) {
	app := buildDesignApp(newMemDesignRepo(), "")

	resp := postJSON(t, app, "/api/designs/design-saved", fiber.Map{"scene": `{"items": [`})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["message"], "JSON inválido",
		"el mensaje debe llevar el motivo del fallo de parseo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func seedDesign(repo *memDesignRepo, id, screenshotURL string, price string) {
	repo.Create(context.Background(), &entity.Design{
		ID:            id,
		UserID:        ownerID,
		RoomType:      "Living",
		ScreenshotURL: screenshotURL,
		CreatedAt:     time.Now(),
		Items: []entity.PlacedItem{
			{
				ItemID: "prod-1",
				Scale:  entity.Vec3One(),
				Item:   &entity.Item{ID: "prod-1", Name: "Sofá", Price: decimal.RequireFromString(price)},
			},
		},
	})
}

func TestListDesigns_InyectaTotalPriceYAbsolutizaURL(t *testing.T) {
	repo := newMemDesignRepo()
	seedDesign(repo, "d-1", "/uploads/design_d-1.png", "120.50")
	app := buildDesignApp(repo, "https://cdn.dreamspace.test")

	req := httptest.NewRequest(http.MethodGet, "/api/designs", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)

	assert.Equal(t, "https://cdn.dreamspace.test/uploads/design_d-1.png", list[0]["screenshotUrl"],
		"la URL relativa debe absolutizarse contra la base pública configurada")
	assert.Equal(t, 120.5, list[0]["totalPrice"],
		"el total se recalcula en cada lectura y viaja como número JSON, no como string")
}

func TestListDesigns_RecentLimitaADiezMasNuevos(t *testing.T) {
	repo := newMemDesignRepo()
	base := time.Now()
	for i := 1; i <= 12; i++ {
		repo.Create(context.Background(), &entity.Design{
			ID:        fmt.Sprintf("d-%02d", i),
			UserID:    ownerID,
			RoomType:  "Living",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	app := buildDesignApp(repo, "")

	req := httptest.NewRequest(http.MethodGet, "/api/designs?recent=1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 10, "recent=1 limita a los 10 más nuevos")
	assert.Equal(t, "d-12", list[0]["id"], "orden por fecha de creación descendente")
	assert.Equal(t, "d-03", list[9]["id"], "los dos más viejos quedan fuera")
}

func TestGetDesign_NoExistenteRetorna404(t *testing.T) {
	app := buildDesignApp(newMemDesignRepo(), "")

	req := httptest.NewRequest(http.MethodGet, "/api/designs/no-existe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestListDesignsByUser_FiltraPorDueno(t *testing.T) {
	repo := newMemDesignRepo()
	seedDesign(repo, "d-1", "", "10")
	repo.Create(context.Background(), &entity.Design{
		ID: "d-otro", UserID: "otro-usuario", RoomType: "Office", CreatedAt: time.Now(),
	})
	app := buildDesignApp(repo, "")

	req := httptest.NewRequest(http.MethodGet, "/api/designs/user/"+ownerID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "d-1", list[0]["id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteDesign_NoExistenteRetorna404(t *testing.T) {
	app := buildDesignApp(newMemDesignRepo(), "")

	req := httptest.NewRequest(http.MethodDelete, "/api/designs/no-existe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"borrar un id inexistente debe distinguirse de un borrado exitoso")
}

func TestDeleteDesign_Existente(t *testing.T) {
	repo := newMemDesignRepo()
	seedDesign(repo, "d-1", "", "10")
	app := buildDesignApp(repo, "")

	req := httptest.NewRequest(http.MethodDelete, "/api/designs/d-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, repo.designs)
}

func TestUpdateDesign_ReemplazoCompleto(t *testing.T) {
	repo := newMemDesignRepo()
	seedDesign(repo, "d-1", "", "10")
	app := buildDesignApp(repo, "")

	body, _ := json.Marshal(fiber.Map{
		"roomType": "Bedroom",
		"items": []fiber.Map{
			{"itemId": "prod-9", "position": fiber.Map{"x": 1, "y": 0, "z": 0}, "rotation": fiber.Map{}},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/api/designs/d-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	saved := repo.designs["d-1"]
	assert.Equal(t, "Bedroom", saved.RoomType)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "prod-9", saved.Items[0].ItemID)
	assert.Equal(t, entity.Vec3One(), saved.Items[0].Scale,
		"scale ausente en el reemplazo toma el neutro")
}
