package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	conn := &Connection{DB: db}
	mock.ExpectPing()

	assert.NoError(t, conn.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnection_NilPool(t *testing.T) {
	conn := &Connection{}

	assert.Error(t, conn.Ping(context.Background()))
	assert.NoError(t, conn.Close())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505")))
	assert.False(t, isUniqueViolation(nil))
}
