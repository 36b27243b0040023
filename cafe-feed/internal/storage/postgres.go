package storage

import (
	"context"
	"database/sql"
)

// LocationSource counts cafes per normalized location straight from the cafes table.
type LocationSource struct {
	DB *sql.DB
}

func NewLocationSource(db *sql.DB) *LocationSource {
	return &LocationSource{DB: db}
}

func (s *LocationSource) LocationCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT LOWER(TRIM(location)) AS location, COUNT(*)
		FROM cafes
		WHERE TRIM(location) <> ''
		GROUP BY LOWER(TRIM(location))`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			location string
			count    int
		)
		if err := rows.Scan(&location, &count); err != nil {
			return nil, err
		}
		counts[location] = count
	}
	return counts, rows.Err()
}
