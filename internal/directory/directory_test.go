package directory_test

import (
	"context"
	"testing"

	"go-workboard/internal/directory"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestLookup(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectQuery("FROM \"employees\"").
		WithArgs("a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "status"}).
			AddRow("a", "Ani", "Employee", "Active"))

	found, err := directory.New(gdb).Lookup(context.Background(), []string{"a", "b"})

	assert.NoError(t, err)
	assert.Equal(t, directory.Person{ID: "a", Name: "Ani", Role: "Employee", Status: "Active"}, found["a"])
	assert.Equal(t, []string{"b"}, directory.Missing([]string{"a", "b", "b"}, found))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookup_EmptyIDsSkipsQuery(t *testing.T) {
	found, err := directory.New(nil).Lookup(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, found)
}
