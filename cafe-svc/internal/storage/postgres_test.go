package storage

import (
	"context"
	"errors"
	"testing"

	"cafe-api/cafe-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cafeRowColumns = []string{
	"id", "name", "map_url", "img_url", "location", "seats",
	"has_toilet", "has_wifi", "has_sockets", "can_take_calls", "coffee_price",
}

// helper to install sqlmock-backed DB.
func setupCafeTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresRepository(mockDB), mock
}

func TestListCafes(t *testing.T) {
	repo, mock := setupCafeTestDB(t)

	mock.ExpectQuery("FROM cafes ORDER BY id").
		WillReturnRows(sqlmock.NewRows(cafeRowColumns).
			AddRow(1, "Science Gallery", "https://maps/1", "https://img/1", "London Bridge", "20-30", true, true, false, false, "£2.40").
			AddRow(2, "Bermondsey Street", "https://maps/2", "https://img/2", "Bermondsey", "10-20", false, true, true, true, nil))

	cafes, err := repo.ListCafes(context.Background())
	require.NoError(t, err)
	require.Len(t, cafes, 2)

	assert.Equal(t, "Science Gallery", cafes[0].Name)
	require.NotNil(t, cafes[0].CoffeePrice)
	assert.Equal(t, "£2.40", *cafes[0].CoffeePrice)
	assert.True(t, cafes[1].CanTakeCalls)
	assert.Nil(t, cafes[1].CoffeePrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCafes_Empty(t *testing.T) {
	repo, mock := setupCafeTestDB(t)

	mock.ExpectQuery("FROM cafes ORDER BY id").
		WillReturnRows(sqlmock.NewRows(cafeRowColumns))

	cafes, err := repo.ListCafes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cafes)
	assert.Empty(t, cafes)
}

func TestListCafes_QueryError(t *testing.T) {
	repo, mock := setupCafeTestDB(t)

	mock.ExpectQuery("FROM cafes ORDER BY id").WillReturnError(errors.New("connection refused"))

	_, err := repo.ListCafes(context.Background())
	assert.Error(t, err)
}

func TestGetCafe(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(cafeRowColumns).
				AddRow(7, "Goswell Road", "https://maps/7", "https://img/7", "Clerkenwell", "30-40", true, false, true, false, nil),
		},
		{
			name:    "not found",
			rows:    sqlmock.NewRows(cafeRowColumns),
			wantErr: domain.ErrCafeNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupCafeTestDB(t)
			mock.ExpectQuery("FROM cafes WHERE id = ").WithArgs(7).WillReturnRows(testCase.rows)

			cafe, err := repo.GetCafe(context.Background(), 7)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, cafe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, cafe.ID)
			assert.Equal(t, "Clerkenwell", cafe.Location)
		})
	}
}

func TestCreateCafe(t *testing.T) {
	price := "£2.75"
	cafe := &domain.Cafe{
		Name: "Trade Commercial Road", MapURL: "https://maps/t", ImgURL: "https://img/t",
		Location: "Whitechapel", Seats: "50+", HasToilet: true, HasWifi: true, CoffeePrice: &price,
	}

	repo, mock := setupCafeTestDB(t)
	mock.ExpectQuery("INSERT INTO cafes").
		WithArgs("Trade Commercial Road", "https://maps/t", "https://img/t", "Whitechapel", "50+",
			true, true, false, false, "£2.75").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(22))

	require.NoError(t, repo.CreateCafe(context.Background(), cafe))
	assert.Equal(t, 22, cafe.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCafe_NullPrice(t *testing.T) {
	cafe := &domain.Cafe{Name: "No Price", MapURL: "m", ImgURL: "i", Location: "Peckham", Seats: "0-10"}

	repo, mock := setupCafeTestDB(t)
	mock.ExpectQuery("INSERT INTO cafes").
		WithArgs("No Price", "m", "i", "Peckham", "0-10", false, false, false, false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, repo.CreateCafe(context.Background(), cafe))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCafe_DuplicateName(t *testing.T) {
	repo, mock := setupCafeTestDB(t)
	mock.ExpectQuery("INSERT INTO cafes").WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateCafe(context.Background(), &domain.Cafe{Name: "Dup"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestUpdateCoffeePrice(t *testing.T) {
	repo, mock := setupCafeTestDB(t)
	mock.ExpectExec("UPDATE cafes SET coffee_price").
		WithArgs("3.0", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdateCoffeePrice(context.Background(), 4, "3.0")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)
}

func TestDeleteCafe_Missing(t *testing.T) {
	repo, mock := setupCafeTestDB(t)
	mock.ExpectExec("DELETE FROM cafes").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.DeleteCafe(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestEnsureSchemaExecutesStatement(t *testing.T) {
	repo, mock := setupCafeTestDB(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS cafes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
