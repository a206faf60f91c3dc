package pendingrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/rentix/rentix/internal/domain"
)

func TestRepository_Create(t *testing.T) {
	t.Run("Stores the hold under the session key with the TTL", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := New(rdb)

		mock.CustomMatch(func(expected, actual []interface{}) error {
			// CreatedAt is stamped inside Create, so only the shape is pinned.
			if fmt.Sprint(actual[1]) != "pending:sess-1" {
				return fmt.Errorf("unexpected key %v", actual[1])
			}
			return nil
		}).ExpectSet("pending:sess-1", "", TTL).SetVal("OK")

		err := repo.Create(context.Background(), &domain.PendingRenting{
			SessionID:  "sess-1",
			VehicleID:  3,
			Months:     12,
			MonthlyFee: 300,
			Total:      3600,
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rejects a hold without required fields", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		repo := New(rdb)

		err := repo.Create(context.Background(), &domain.PendingRenting{SessionID: "sess-1"})
		assert.Error(t, err)

		err = repo.Create(context.Background(), &domain.PendingRenting{VehicleID: 3})
		assert.Error(t, err)
	})
}

func TestRepository_FindBySession(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := New(rdb)

	t.Run("Hold found", func(t *testing.T) {
		stored := domain.PendingRenting{
			SessionID:  "sess-1",
			VehicleID:  3,
			Months:     12,
			MonthlyFee: 300,
			Total:      3600,
			CreatedAt:  time.Now(),
		}
		data, err := json.Marshal(stored)
		assert.NoError(t, err)

		mock.ExpectGet("pending:sess-1").SetVal(string(data))

		pending, err := repo.FindBySession(context.Background(), "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, 3, pending.VehicleID)
		assert.Equal(t, 12, pending.Months)
	})

	t.Run("Absent hold is not an error", func(t *testing.T) {
		mock.ExpectGet("pending:sess-2").RedisNil()

		pending, err := repo.FindBySession(context.Background(), "sess-2")
		assert.NoError(t, err)
		assert.Nil(t, pending)
	})

	t.Run("Store error", func(t *testing.T) {
		mock.ExpectGet("pending:sess-1").SetErr(errors.New("connection refused"))

		pending, err := repo.FindBySession(context.Background(), "sess-1")
		assert.Error(t, err)
		assert.Nil(t, pending)
	})
}

func TestRepository_DeleteBySession(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	repo := New(rdb)

	t.Run("Existing hold deleted", func(t *testing.T) {
		mock.ExpectDel("pending:sess-1").SetVal(1)

		existed, err := repo.DeleteBySession(context.Background(), "sess-1")
		assert.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("Nothing to delete", func(t *testing.T) {
		mock.ExpectDel("pending:sess-2").SetVal(0)

		existed, err := repo.DeleteBySession(context.Background(), "sess-2")
		assert.NoError(t, err)
		assert.False(t, existed)
	})
}
