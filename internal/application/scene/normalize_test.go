package scene_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/scene"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

func TestNormalize_EscenaCompleta(t *testing.T) {
	raw := `{
		"roomType": "Kitchen",
		"items": [
			{"productId": "3f2d5a1c-8b4e-4f6a-9c0d-1e2f3a4b5c6d", "position": [1, 0, 2.5], "rotation": [0, 90, 0], "scale": [1, 1, 1]},
			{"productId": "9b8a7c6d-5e4f-4a3b-9c1d-0e9f8a7b6c5d", "position": [-3, 0.5, 0], "rotation": [0, 0, 0]}
		]
	}`
	roomType, items, err := scene.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "Kitchen", roomType)
	require.Len(t, items, 2)

	assert.Equal(t, "3f2d5a1c-8b4e-4f6a-9c0d-1e2f3a4b5c6d", items[0].ItemID)
	assert.Equal(t, entity.Vec3{X: 1, Y: 0, Z: 2.5}, items[0].Position,
		"position debe mapearse posicionalmente a x,y,z")
	assert.Equal(t, entity.Vec3{X: 0, Y: 90, Z: 0}, items[0].Rotation)
	assert.Equal(t, entity.Vec3One(), items[0].Scale)

	assert.Equal(t, "9b8a7c6d-5e4f-4a3b-9c1d-0e9f8a7b6c5d", items[1].ItemID)
	assert.Equal(t, entity.Vec3One(), items[1].Scale,
		"scale ausente debe tomar el neutro (1,1,1)")
}

func TestNormalize_RoomTypeConFallbacks(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"roomType presente", `{"roomType": "Bedroom", "items": []}`, "Bedroom"},
		{"fallback a room", `{"room": "Living", "items": []}`, "Living"},
		{"sin ninguno", `{"items": []}`, "Unknown"},
		{"roomType gana sobre room", `{"roomType": "Office", "room": "Living", "items": []}`, "Office"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roomType, _, err := scene.Normalize(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, roomType)
		})
	}
}

func TestNormalize_EscenaSinItems(t *testing.T) {
	roomType, items, err := scene.Normalize(`{"roomType": "Bathroom"}`)
	require.NoError(t, err)
	assert.Equal(t, "Bathroom", roomType)
	assert.Empty(t, items)
}

func TestNormalize_ScaleParcialPorEje(t *testing.T) {
	raw := `{"roomType": "Kitchen", "items": [
		{"productId": "3f2d5a1c-8b4e-4f6a-9c0d-1e2f3a4b5c6d", "position": [0,0,0], "rotation": [0,0,0], "scale": [2]}
	]}`
	_, items, err := scene.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.Vec3{X: 2, Y: 1, Z: 1}, items[0].Scale,
		"cada eje ausente de scale toma 1, los presentes se respetan")
}

func TestNormalize_ScaleCeroExplicitoSeConserva(t *testing.T) {
	raw := `{"roomType": "Kitchen", "items": [
		{"productId": "3f2d5a1c-8b4e-4f6a-9c0d-1e2f3a4b5c6d", "position": [0,0,0], "rotation": [0,0,0], "scale": [0, 0, 0]}
	]}`
	_, items, err := scene.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, entity.Vec3{}, items[0].Scale,
		"un cero enviado explícitamente no se reinterpreta como 1")
}

func TestNormalize_JSONInvalidoExponeElMotivo(t *testing.T) {
	_, _, err := scene.Normalize(`{"roomType": "Kitchen", "items": [`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "JSON inválido",
		"el error debe llevar el motivo del fallo de parseo")
}

func TestNormalize_ProductIDMalformadoSeRechaza(t *testing.T) {
	// Una referencia que no es UUID jamás puede resolverse contra el catálogo;
	// aceptarla dejaría un documento que rompe el populate en cada lectura.
	raw := `{"roomType": "Kitchen", "items": [
		{"productId": "prod-1", "position": [0,0,0], "rotation": [0,0,0]}
	]}`
	_, _, err := scene.Normalize(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "productId")
	assert.Contains(t, err.Error(), "item 0")
}

func TestNormalize_ProductIDInexistentePeroBienFormadoSeAcepta(t *testing.T) {
	// Bien formado pero ausente del catálogo: referencia no resuelta, vale
	// cero al valorar. No es un error de entrada.
	raw := `{"roomType": "Kitchen", "items": [
		{"productId": "00000000-0000-4000-8000-000000000001", "position": [0,0,0], "rotation": [0,0,0]}
	]}`
	_, items, err := scene.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "00000000-0000-4000-8000-000000000001", items[0].ItemID)
}

func TestNormalize_PositionCorta(t *testing.T) {
	raw := `{"roomType": "Kitchen", "items": [
		{"productId": "3f2d5a1c-8b4e-4f6a-9c0d-1e2f3a4b5c6d", "position": [1, 2], "rotation": [0,0,0]}
	]}`
	_, _, err := scene.Normalize(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "position")
}

func TestNormalize_RotationCorta(t *testing.T) {
	raw := `{"roomType": "Kitchen", "items": [
		{"productId": "3f2d5a1c-8b4e-4f6a-9c0d-1e2f3a4b5c6d", "position": [0,0,0], "rotation": []}
	]}`
	_, _, err := scene.Normalize(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "rotation")
}
