package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/rentix/rentix/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "role", "active", "deleted_at", "created_at"}
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "ana@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns()).
					AddRow(1, "ana", "ana@example.com", "hashed_password", "user", true, nil, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM users WHERE email = $1`)).
					WithArgs("ana@example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Username:     "ana",
				Email:        "ana@example.com",
				PasswordHash: "hashed_password",
				Role:         "user",
				Active:       true,
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM users WHERE email = $1`)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "ana@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM users WHERE email = $1`)).
					WithArgs("ana@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByUsernameOrEmail(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Collision on username", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns()).
			AddRow(2, "ana", "other@example.com", "hash", "user", true, nil, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM users WHERE username = $1 OR email = $2`)).
			WithArgs("ana", "ana@example.com").
			WillReturnRows(rows)

		result, err := repo.FindByUsernameOrEmail(context.Background(), "ana", "ana@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "ana", result.Username)
	})

	t.Run("No collision", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+selectColumns+` FROM users WHERE username = $1 OR email = $2`)).
			WithArgs("newuser", "new@example.com").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByUsernameOrEmail(context.Background(), "newuser", "new@example.com")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Create user successfully", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`)).
			WithArgs("newuser", "new@example.com", "hashed_password", "user").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		user := &domain.User{Username: "newuser", Email: "new@example.com", PasswordHash: "hashed_password", Role: "user"}
		result, err := repo.Create(context.Background(), user)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("newuser", "new@example.com", "hashed_password", "user").
			WillReturnError(errors.New("database error"))

		user := &domain.User{Username: "newuser", Email: "new@example.com", PasswordHash: "hashed_password", Role: "user"}
		result, err := repo.Create(context.Background(), user)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_SoftDelete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users`)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.SoftDelete(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_HardDelete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	ok, err := repo.HardDelete(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, ok)
}
