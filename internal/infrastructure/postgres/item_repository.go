package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para el catálogo.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

const itemColumns = `id, name, COALESCE(description, ''), price, COALESCE(preview_image, ''),
	COALESCE(asset_bundle_url, ''), COALESCE(category, ''), liked, created_at, updated_at`

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, description, price, preview_image, asset_bundle_url, category, liked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.PreviewImage,
		item.AssetBundleURL, item.Category, item.Liked, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	var item entity.Item
	err := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.PreviewImage,
		&item.AssetBundleURL, &item.Category, &item.Liked, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}

// List lista el catálogo con filtros opcionales. La búsqueda por nombre es
// insensible a mayúsculas y acentos: el término se pliega en Go y la columna
// con unaccent() en la consulta.
func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	var conds []string
	var args []any
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+foldSearchTerm(filter.Search)+"%")
		conds = append(conds, fmt.Sprintf("unaccent(lower(name)) LIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// ListUpdatedSince pull incremental por updated_at; since nil devuelve todo.
func (r *ItemRepo) ListUpdatedSince(ctx context.Context, since *time.Time) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	var args []any
	if since != nil {
		query += ` WHERE updated_at > $1`
		args = append(args, *since)
	}
	query += ` ORDER BY updated_at ASC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sync items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// Update actualiza un artículo existente.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, price = $4, preview_image = $5,
			asset_bundle_url = $6, category = $7, liked = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.PreviewImage,
		item.AssetBundleURL, item.Category, item.Liked, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un artículo. ErrNotFound si el id no existe.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var item entity.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.PreviewImage,
			&item.AssetBundleURL, &item.Category, &item.Liked, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// foldSearchTerm normaliza el término de búsqueda: minúsculas y sin marcas
// diacríticas ("Sofá" -> "sofa"), simétrico al unaccent() del lado SQL.
func foldSearchTerm(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
