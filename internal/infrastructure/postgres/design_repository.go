package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

var _ repository.DesignRepository = (*DesignRepo)(nil)

// DesignRepo implementación del puerto DesignRepository sobre PostgreSQL.
// Los artículos colocados viven en una columna JSONB (shape documental, igual
// que el backend original). El populate es un paso explícito: JOIN del dueño
// en la misma consulta y una segunda consulta por los artículos referenciados,
// para que la valoración siga siendo una función pura del diseño resuelto.
type DesignRepo struct {
	pool *pgxpool.Pool
}

// NewDesignRepository construye el adaptador de persistencia para diseños.
func NewDesignRepository(pool *pgxpool.Pool) *DesignRepo {
	return &DesignRepo{pool: pool}
}

const designSelect = `
	SELECT d.id, d.user_id, d.room_type, d.items, COALESCE(d.screenshot_url, ''), d.created_at,
	       u.id, u.name, u.email
	FROM designs d
	LEFT JOIN users u ON u.id = d.user_id`

// Create persiste un diseño completo (única escritura, sin screenshot).
func (r *DesignRepo) Create(ctx context.Context, design *entity.Design) error {
	itemsJSON, err := json.Marshal(design.Items)
	if err != nil {
		return fmt.Errorf("serializar items: %w", err)
	}
	query := `
		INSERT INTO designs (id, user_id, room_type, items, screenshot_url, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	_, err = r.pool.Exec(ctx, query,
		design.ID, design.UserID, design.RoomType, itemsJSON, design.ScreenshotURL, design.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert design: %w", err)
	}
	return nil
}

// GetByID obtiene un diseño resuelto. Devuelve nil, nil si no existe.
func (r *DesignRepo) GetByID(ctx context.Context, id string) (*entity.Design, error) {
	row := r.pool.QueryRow(ctx, designSelect+` WHERE d.id = $1`, id)
	d, err := scanDesign(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get design: %w", err)
	}
	if err := r.resolveItems(ctx, []*entity.Design{d}); err != nil {
		return nil, err
	}
	return d, nil
}

// List lista diseños resueltos; recent=true limita a los 10 más nuevos por
// fecha de creación descendente.
func (r *DesignRepo) List(ctx context.Context, recent bool) ([]*entity.Design, error) {
	query := designSelect + ` ORDER BY d.created_at DESC`
	if recent {
		query += ` LIMIT 10`
	}
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()
	list, err := scanDesigns(rows)
	if err != nil {
		return nil, err
	}
	if err := r.resolveItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListByUser lista los diseños resueltos de un usuario.
func (r *DesignRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Design, error) {
	rows, err := r.pool.Query(ctx, designSelect+` WHERE d.user_id = $1 ORDER BY d.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list designs by user: %w", err)
	}
	defer rows.Close()
	list, err := scanDesigns(rows)
	if err != nil {
		return nil, err
	}
	if err := r.resolveItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Replace reemplaza los campos completos del diseño.
func (r *DesignRepo) Replace(ctx context.Context, design *entity.Design) error {
	itemsJSON, err := json.Marshal(design.Items)
	if err != nil {
		return fmt.Errorf("serializar items: %w", err)
	}
	query := `
		UPDATE designs SET room_type = $2, items = $3, screenshot_url = NULLIF($4, '')
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, design.ID, design.RoomType, itemsJSON, design.ScreenshotURL)
	if err != nil {
		return fmt.Errorf("update design: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetScreenshotURL segunda escritura del flujo de ingestión.
func (r *DesignRepo) SetScreenshotURL(ctx context.Context, id, url string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE designs SET screenshot_url = $2 WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("update screenshot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un diseño. ErrNotFound si el id no existe.
func (r *DesignRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM designs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía la colección (reset de kiosko).
func (r *DesignRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM designs`); err != nil {
		return fmt.Errorf("delete designs: %w", err)
	}
	return nil
}

// resolveItems resuelve en lote las referencias de catálogo de un conjunto de
// diseños (populate). Referencias inexistentes o malformadas quedan en nil:
// valen cero en la valoración.
func (r *DesignRepo) resolveItems(ctx context.Context, designs []*entity.Design) error {
	idSet := make(map[string]struct{})
	for _, d := range designs {
		for _, placed := range d.Items {
			if placed.ItemID != "" {
				idSet[placed.ItemID] = struct{}{}
			}
		}
	}
	if len(idSet) == 0 {
		return nil
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	ids = validUUIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(preview_image, ''), COALESCE(category, '')
		FROM items WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("resolve design items: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*entity.Item, len(ids))
	for rows.Next() {
		var item entity.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.PreviewImage, &item.Category); err != nil {
			return fmt.Errorf("scan design item: %w", err)
		}
		byID[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, d := range designs {
		for i := range d.Items {
			d.Items[i].Item = byID[d.Items[i].ItemID]
		}
	}
	return nil
}

func scanDesign(row pgx.Row) (*entity.Design, error) {
	var (
		d         entity.Design
		itemsJSON []byte
		ownerID   *string
		ownerName *string
		ownerMail *string
	)
	err := row.Scan(&d.ID, &d.UserID, &d.RoomType, &itemsJSON, &d.ScreenshotURL, &d.CreatedAt,
		&ownerID, &ownerName, &ownerMail)
	if err != nil {
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &d.Items); err != nil {
			return nil, fmt.Errorf("deserializar items: %w", err)
		}
	}
	if ownerID != nil {
		d.Owner = &entity.User{ID: *ownerID}
		if ownerName != nil {
			d.Owner.Name = *ownerName
		}
		if ownerMail != nil {
			d.Owner.Email = *ownerMail
		}
	}
	return &d, nil
}

func scanDesigns(rows pgx.Rows) ([]*entity.Design, error) {
	var list []*entity.Design
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan design: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
