package counter_test

import (
	"context"
	"errors"
	"testing"

	"go-workboard/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func TestCounterRepository_GetNextValue(t *testing.T) {
	t.Run("returns upserted value", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectQuery("INSERT INTO workboard_counters").
			WithArgs(counter.ScopeProjectNumber).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(7))

		v, err := counter.NewRepository(gdb).GetNextValue(context.Background(), counter.ScopeProjectNumber)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates errors", func(t *testing.T) {
		gdb, mock := newGormMock(t)
		mock.ExpectQuery("INSERT INTO workboard_counters").
			WillReturnError(errors.New("db down"))

		_, err := counter.NewRepository(gdb).GetNextValue(context.Background(), counter.ScopeProjectNumber)

		assert.EqualError(t, err, "db down")
	})
}
