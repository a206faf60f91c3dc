package verificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Creates a 6-digit code", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO verification_codes`)).
			WithArgs("ana@example.com", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "code", "created_at"}).
				AddRow(1, "ana@example.com", "042917", time.Now()))

		vc, err := repo.Create(context.Background(), "ana@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "ana@example.com", vc.Email)
		assert.Len(t, vc.Code, 6)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO verification_codes`)).
			WithArgs("ana@example.com", pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))

		vc, err := repo.Create(context.Background(), "ana@example.com")
		assert.Error(t, err)
		assert.Nil(t, vc)
	})
}

func TestRepository_PurgeExpired(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM verification_codes`)).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	purged, err := repo.PurgeExpired(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(4), purged)
}
