package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"storefront-backend/internal/product/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- helpers ---

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock, db
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewGormProductRepository(gdb)
	product := &domain.Product{Name: "Widget", Price: 9.99, UserID: "u1"}

	err := repo.Create(product)
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserID_FiltersByOwner(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "price", "user_id", "created_at", "updated_at"}).
		AddRow("p1", "Widget", 9.99, "u1", now, now).
		AddRow("p2", "Gadget", 4.5, "u1", now, now)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	repo := NewGormProductRepository(gdb)
	products, err := repo.FindByUserID("u1")
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "u1", products[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserID_EmptyForOtherOwner(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE user_id = \$1`).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "user_id", "created_at", "updated_at"}))

	repo := NewGormProductRepository(gdb)
	products, err := repo.FindByUserID("u2")
	require.NoError(t, err)
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestFindByUserID_StorageError(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnError(errors.New("connection reset"))

	repo := NewGormProductRepository(gdb)
	_, err := repo.FindByUserID("u1")
	assert.Error(t, err)
}

func TestDeleteByIDAndUserID_ScopedToOwner(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1 AND user_id = \$2`).
		WithArgs("p1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewGormProductRepository(gdb)
	err := repo.DeleteByIDAndUserID("p1", "u1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDAndUserID_NoMatchIsSuccess(t *testing.T) {
	gdb, mock, db := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1 AND user_id = \$2`).
		WithArgs("missing", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewGormProductRepository(gdb)
	err := repo.DeleteByIDAndUserID("missing", "u1")
	assert.NoError(t, err)
}
