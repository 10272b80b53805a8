package scene

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/ports"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

// IngestUseCase persiste una escena subida por el visualizador 3D.
//
// Secuencia en dos fases: (1) crear el Design sin screenshot, (2) guardar la
// imagen bajo un nombre derivado del id y parchear la URL. Las dos escrituras
// no son atómicas: un fallo entre ambas deja un diseño sin screenshot, estado
// parcial aceptado y no revertido.
type IngestUseCase struct {
	designs repository.DesignRepository
	assets  ports.AssetStore
	// ownerID cuenta a la que se atribuyen los diseños de este canal (el
	// visualizador no envía token). Inyectado por configuración.
	ownerID string
}

// NewIngestUseCase construye el caso de uso.
func NewIngestUseCase(designs repository.DesignRepository, assets ports.AssetStore, ownerID string) *IngestUseCase {
	return &IngestUseCase{designs: designs, assets: assets, ownerID: ownerID}
}

// Ingest valida y normaliza la escena, persiste el diseño y, si llegó
// screenshot, lo guarda y escribe la URL resultante sobre el registro.
// Errores de validación envuelven domain.ErrInvalidInput; un fallo de
// almacenamiento del screenshot se devuelve como error aunque el diseño ya
// haya quedado persistido (sin rollback).
func (uc *IngestUseCase) Ingest(ctx context.Context, in dto.SceneUploadRequest) (*dto.SceneSavedResponse, error) {
	if in.Scene == "" {
		return nil, fmt.Errorf("%w: falta el campo scene", domain.ErrInvalidInput)
	}

	// El screenshot se decodifica antes de escribir nada: un base64 corrupto
	// no debe dejar un diseño a medias.
	var imageData []byte
	if in.Screenshot != "" {
		data, err := base64.StdEncoding.DecodeString(in.Screenshot)
		if err != nil {
			return nil, fmt.Errorf("%w: screenshot no es base64 válido: %v", domain.ErrInvalidInput, err)
		}
		imageData = data
	}

	roomType, items, err := Normalize(in.Scene)
	if err != nil {
		return nil, err
	}

	design := &entity.Design{
		ID:        uuid.New().String(),
		UserID:    uc.ownerID,
		RoomType:  roomType,
		Items:     items,
		CreatedAt: time.Now(),
	}
	if err := uc.designs.Create(ctx, design); err != nil {
		return nil, fmt.Errorf("guardar diseño: %w", err)
	}

	var screenshotURL *string
	if imageData != nil {
		name := fmt.Sprintf("design_%s.png", design.ID)
		url, err := uc.assets.Store(ctx, imageData, name)
		if err != nil {
			// El diseño ya existe sin screenshot; se informa el fallo sin revertir.
			return nil, fmt.Errorf("guardar screenshot: %w", err)
		}
		if err := uc.designs.SetScreenshotURL(ctx, design.ID, url); err != nil {
			return nil, fmt.Errorf("actualizar screenshot del diseño: %w", err)
		}
		design.ScreenshotURL = url
		screenshotURL = &url
	}

	return &dto.SceneSavedResponse{
		Message:       "Diseño guardado correctamente",
		DesignID:      design.ID,
		ScreenshotURL: screenshotURL,
		Design:        toDesignResponse(design),
	}, nil
}

// toDesignResponse arma la vista del diseño recién creado. En este punto las
// referencias no están resueltas contra el catálogo, así que no se inyecta
// totalPrice (eso ocurre en las rutas de lectura).
func toDesignResponse(d *entity.Design) dto.DesignResponse {
	items := make([]dto.PlacedItemResponse, 0, len(d.Items))
	for _, placed := range d.Items {
		items = append(items, dto.PlacedItemResponse{
			ItemID:   placed.ItemID,
			Position: dto.Vec3DTO(placed.Position),
			Rotation: dto.Vec3DTO(placed.Rotation),
			Scale:    dto.Vec3DTO(placed.Scale),
		})
	}
	resp := dto.DesignResponse{
		ID:        d.ID,
		UserID:    d.UserID,
		RoomType:  d.RoomType,
		Items:     items,
		CreatedAt: d.CreatedAt,
	}
	if d.ScreenshotURL != "" {
		u := d.ScreenshotURL
		resp.ScreenshotURL = &u
	}
	return resp
}
