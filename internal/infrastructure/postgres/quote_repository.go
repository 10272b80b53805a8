package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL.
// Las líneas (snapshots de nombre/precio) viven en una columna JSONB; el
// populate del producto actual de cada línea es una segunda consulta, sin
// tocar los snapshots.
type QuoteRepo struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository construye el adaptador de persistencia para cotizaciones.
func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepo {
	return &QuoteRepo{pool: pool}
}

const quoteSelect = `
	SELECT q.id, q.user_id, COALESCE(q.room_type, ''), q.items, q.subtotal, q.discount, q.grand_total,
	       q.status, COALESCE(q.screenshot_url, ''), COALESCE(q.notes, ''), q.created_at, q.updated_at,
	       u.id, u.name, u.email
	FROM quotes q
	LEFT JOIN users u ON u.id = q.user_id`

// Create persiste una cotización.
func (r *QuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	itemsJSON, err := json.Marshal(quote.Items)
	if err != nil {
		return fmt.Errorf("serializar líneas: %w", err)
	}
	query := `
		INSERT INTO quotes (id, user_id, room_type, items, subtotal, discount, grand_total, status, screenshot_url, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)`
	_, err = r.pool.Exec(ctx, query,
		quote.ID, quote.UserID, quote.RoomType, itemsJSON, quote.Subtotal, quote.Discount,
		quote.GrandTotal, quote.Status, quote.ScreenshotURL, quote.Notes, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización resuelta. Devuelve nil, nil si no existe.
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	row := r.pool.QueryRow(ctx, quoteSelect+` WHERE q.id = $1`, id)
	q, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if err := r.resolveProducts(ctx, []*entity.Quote{q}); err != nil {
		return nil, err
	}
	return q, nil
}

// List lista cotizaciones filtradas, más reciente primero.
func (r *QuoteRepo) List(ctx context.Context, filter repository.QuoteFilter) ([]*entity.Quote, error) {
	query := quoteSelect
	var conds []string
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("q.status = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("q.user_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("q.created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("q.created_at <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY q.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.resolveProducts(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteAll vacía la colección (reset de kiosko).
func (r *QuoteRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM quotes`); err != nil {
		return fmt.Errorf("delete quotes: %w", err)
	}
	return nil
}

// resolveProducts resuelve en lote la referencia de producto de cada línea.
func (r *QuoteRepo) resolveProducts(ctx context.Context, quotes []*entity.Quote) error {
	idSet := make(map[string]struct{})
	for _, q := range quotes {
		for _, line := range q.Items {
			if line.ProductID != "" {
				idSet[line.ProductID] = struct{}{}
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
		SELECT id, name, price, COALESCE(category, '')
		FROM items WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("resolve quote products: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*entity.Item, len(ids))
	for rows.Next() {
		var item entity.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category); err != nil {
			return fmt.Errorf("scan quote product: %w", err)
		}
		byID[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, q := range quotes {
		for i := range q.Items {
			q.Items[i].Product = byID[q.Items[i].ProductID]
		}
	}
	return nil
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var (
		q         entity.Quote
		itemsJSON []byte
		ownerID   *string
		ownerName *string
		ownerMail *string
	)
	err := row.Scan(&q.ID, &q.UserID, &q.RoomType, &itemsJSON, &q.Subtotal, &q.Discount, &q.GrandTotal,
		&q.Status, &q.ScreenshotURL, &q.Notes, &q.CreatedAt, &q.UpdatedAt,
		&ownerID, &ownerName, &ownerMail)
	if err != nil {
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &q.Items); err != nil {
			return nil, fmt.Errorf("deserializar líneas: %w", err)
		}
	}
	if ownerID != nil {
		q.Owner = &entity.User{ID: *ownerID}
		if ownerName != nil {
			q.Owner.Name = *ownerName
		}
		if ownerMail != nil {
			q.Owner.Email = *ownerMail
		}
	}
	return &q, nil
}
