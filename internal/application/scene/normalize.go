// Package scene implementa la ingestión de escenas del visualizador 3D:
// parseo del JSON externo no confiable, normalización al shape persistido de
// Design, persistencia y manejo del screenshot.
package scene

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// sceneDoc representación externa producida por el visualizador.
// position/rotation son arrays posicionales (índice 0,1,2 -> x,y,z).
type sceneDoc struct {
	RoomType string      `json:"roomType"`
	Room     string      `json:"room"` // fallback de clientes antiguos
	Items    []sceneItem `json:"items"`
}

type sceneItem struct {
	ProductID string    `json:"productId"`
	Position  []float64 `json:"position"`
	Rotation  []float64 `json:"rotation"`
	Scale     []float64 `json:"scale"`
}

// Normalize parsea el campo scene y lo convierte al shape persistido.
// El motivo del fallo de parseo se expone al llamador (envuelve
// domain.ErrInvalidInput). Arrays de position/rotation con menos de 3
// componentes se rechazan de forma explícita en vez de propagar un acceso
// indefinido como hacía el backend original. productId debe ser un UUID:
// una referencia malformada se rechaza en la entrada (el backend original la
// rechazaba al castear el id de documento); una referencia bien formada pero
// inexistente en el catálogo sigue siendo válida y vale cero al valorar.
func Normalize(raw string) (roomType string, items []entity.PlacedItem, err error) {
	var doc sceneDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return "", nil, fmt.Errorf("%w: JSON inválido en scene: %v", domain.ErrInvalidInput, err)
	}

	roomType = doc.RoomType
	if roomType == "" {
		roomType = doc.Room
	}
	if roomType == "" {
		roomType = "Unknown"
	}

	items = make([]entity.PlacedItem, 0, len(doc.Items))
	for i, it := range doc.Items {
		if _, err := uuid.Parse(it.ProductID); err != nil {
			return "", nil, fmt.Errorf("%w: productId del item %d no es un UUID: %q", domain.ErrInvalidInput, i, it.ProductID)
		}
		pos, err := vec3From(it.Position)
		if err != nil {
			return "", nil, fmt.Errorf("%w: position del item %d: %v", domain.ErrInvalidInput, i, err)
		}
		rot, err := vec3From(it.Rotation)
		if err != nil {
			return "", nil, fmt.Errorf("%w: rotation del item %d: %v", domain.ErrInvalidInput, i, err)
		}
		items = append(items, entity.PlacedItem{
			ItemID:   it.ProductID,
			Position: pos,
			Rotation: rot,
			Scale:    scaleFrom(it.Scale),
		})
	}
	return roomType, items, nil
}

// vec3From exige exactamente los 3 componentes x,y,z.
func vec3From(v []float64) (entity.Vec3, error) {
	if len(v) < 3 {
		return entity.Vec3{}, fmt.Errorf("se esperaban 3 componentes, llegaron %d", len(v))
	}
	return entity.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// scaleFrom es tolerante: cada eje ausente toma el neutro 1.
func scaleFrom(v []float64) entity.Vec3 {
	s := entity.Vec3One()
	if len(v) > 0 {
		s.X = v[0]
	}
	if len(v) > 1 {
		s.Y = v[1]
	}
	if len(v) > 2 {
		s.Z = v[2]
	}
	return s
}
