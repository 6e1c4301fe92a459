package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"store-locator-service/internal/domain"
	"store-locator-service/internal/ports"
)

// Postgres-backed implementation of the StoreRepository port.
type PostgresStoreRepository struct{ DB *sql.DB }

func NewPostgresStoreRepository(db *sql.DB) *PostgresStoreRepository {
	return &PostgresStoreRepository{DB: db}
}

const storeColumns = `
	id,
	name,
	postal_code,
	address,
	number,
	neighborhood,
	city,
	state,
	phone,
	business_hours,
	kind,
	handling_days,
	latitude,
	longitude
`

// ListStores returns stores matching the filter ordered by id, which is
// the stable catalog order tie-breaks rely on. limit <= 0 disables
// pagination.
func (r *PostgresStoreRepository) ListStores(
	ctx context.Context,
	filter ports.StoreFilter,
	limit, offset int,
) ([]*domain.Store, error) {
	if r.DB == nil {
		return nil, errors.New("store repository: DB is nil")
	}

	query := `
	SELECT ` + storeColumns + `
	FROM stores
	WHERE ($1 = '' OR lower(state) = lower($1))
	ORDER BY id`

	args := []any{filter.State}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		if offset < 0 {
			offset = 0
		}
		args = append(args, limit, offset)
	}

	rows, err := r.DB.QueryContext(ctx, query+";", args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: query stores table: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0, 32)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("list stores: %w", err)
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stores: row iteration: %w", err)
	}

	return stores, nil
}

func (r *PostgresStoreRepository) CountStores(ctx context.Context, filter ports.StoreFilter) (int, error) {
	if r.DB == nil {
		return 0, errors.New("store repository: DB is nil")
	}

	query := `
	SELECT count(*)
	FROM stores
	WHERE ($1 = '' OR lower(state) = lower($1));`

	var total int
	if err := r.DB.QueryRowContext(ctx, query, filter.State).Scan(&total); err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}

	return total, nil
}

func (r *PostgresStoreRepository) FindStoreByID(ctx context.Context, id string) (*domain.Store, error) {
	if r.DB == nil {
		return nil, errors.New("store repository: DB is nil")
	}

	query := `
	SELECT ` + storeColumns + `
	FROM stores
	WHERE id = $1;`

	row := r.DB.QueryRowContext(ctx, query, id)
	store, err := scanStore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound(fmt.Sprintf("store %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("find store by id: %w", err)
	}

	return store, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStore(row rowScanner) (*domain.Store, error) {
	var (
		s        domain.Store
		lat, lng sql.NullFloat64
	)

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.PostalCode,
		&s.Address,
		&s.Number,
		&s.Neighborhood,
		&s.City,
		&s.State,
		&s.Phone,
		&s.BusinessHours,
		&s.Kind,
		&s.HandlingDays,
		&lat,
		&lng,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan row: %w", err)
	}

	if lat.Valid && lng.Valid {
		s.Location = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}

	return &s, nil
}
