package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cafe-api/cafe-svc/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const cafeColumns = `id, name, map_url, img_url, location, seats,
	has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price`

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCafe(row rowScanner) (domain.Cafe, error) {
	var cafe domain.Cafe
	var price sql.NullString
	err := row.Scan(&cafe.ID, &cafe.Name, &cafe.MapURL, &cafe.ImgURL, &cafe.Location, &cafe.Seats,
		&cafe.HasToilet, &cafe.HasWifi, &cafe.HasSockets, &cafe.CanTakeCalls, &price)
	if err != nil {
		return domain.Cafe{}, err
	}
	if price.Valid {
		cafe.CoffeePrice = &price.String
	}
	return cafe, nil
}

func (r *PostgresRepository) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+cafeColumns+" FROM cafes ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cafes := []domain.Cafe{}
	for rows.Next() {
		cafe, err := scanCafe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cafe: %w", err)
		}
		cafes = append(cafes, cafe)
	}
	return cafes, rows.Err()
}

func (r *PostgresRepository) GetCafe(ctx context.Context, id int) (*domain.Cafe, error) {
	cafe, err := scanCafe(r.DB.QueryRowContext(ctx, "SELECT "+cafeColumns+" FROM cafes WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCafeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *PostgresRepository) CreateCafe(ctx context.Context, cafe *domain.Cafe) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO cafes (name, map_url, img_url, location, seats,
			has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		cafe.Name, cafe.MapURL, cafe.ImgURL, cafe.Location, cafe.Seats,
		cafe.HasToilet, cafe.HasWifi, cafe.HasSockets, cafe.CanTakeCalls, nullString(cafe.CoffeePrice),
	).Scan(&cafe.ID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateName
	}
	return err
}

func (r *PostgresRepository) UpdateCoffeePrice(ctx context.Context, id int, price string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "UPDATE cafes SET coffee_price = $1 WHERE id = $2", price, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteCafe(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM cafes WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS cafes (
			id SERIAL PRIMARY KEY,
			name VARCHAR(250) NOT NULL UNIQUE,
			map_url VARCHAR(500) NOT NULL,
			img_url VARCHAR(500) NOT NULL,
			location VARCHAR(250) NOT NULL,
			seats VARCHAR(250) NOT NULL,
			has_toilet BOOLEAN NOT NULL,
			has_wifi BOOLEAN NOT NULL,
			has_sockets BOOLEAN NOT NULL,
			can_take_calls BOOLEAN NOT NULL,
			coffee_price VARCHAR(250)
		)`
	if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
