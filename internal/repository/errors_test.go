package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"chirp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestClassifyPostgresErrors(t *testing.T) {
	uniqueErr := errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)
	fkErr := errors.New(`ERROR: insert or update on table "replies" violates foreign key constraint "fk_tweets_replies" (SQLSTATE 23503)`)

	assert.True(t, isUniqueConstraintError(uniqueErr))
	assert.False(t, isUniqueConstraintError(fkErr))
	assert.True(t, isForeignKeyError(fkErr))
	assert.False(t, isForeignKeyError(uniqueErr))
	assert.Equal(t, "email", uniqueViolationField(uniqueErr))
}

func TestClassifySQLiteErrors(t *testing.T) {
	uniqueErr := errors.New("UNIQUE constraint failed: users.user_name")
	fkErr := errors.New("FOREIGN KEY constraint failed")

	assert.True(t, isUniqueConstraintError(uniqueErr))
	assert.True(t, isForeignKeyError(fkErr))
	assert.Equal(t, "userName", uniqueViolationField(uniqueErr))
}

func TestClassifyNilError(t *testing.T) {
	assert.False(t, isUniqueConstraintError(nil))
	assert.False(t, isForeignKeyError(nil))
	assert.Empty(t, uniqueViolationField(nil))
}

// The mapping has to hold for the real Postgres driver path, not just
// for raw error strings, so drive a Create through sqlmock.
func TestUserCreateMapsPostgresUniqueViolation(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))

	repo := NewUserRepository(db)
	createErr := repo.Create(context.Background(), &models.User{
		FirstName: "Dup",
		LastName:  "User",
		UserName:  "dup",
		Email:     "dup@example.com",
		Password:  "hashed",
		Birthday:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, createErr)
	assert.Equal(t, models.CodeDuplicateField, models.CodeOf(createErr))
	assert.Contains(t, createErr.Error(), "email")
	assert.NoError(t, mock.ExpectationsWereMet())
}
