package project_test

import (
	"context"
	"testing"

	"go-workboard/internal/project"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestProjectRepository_DetachTasks(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	id := uuid.NewString()
	mock.ExpectExec("UPDATE tasks SET project_id = NULL").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := project.NewRepository(gdb).DetachTasks(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
