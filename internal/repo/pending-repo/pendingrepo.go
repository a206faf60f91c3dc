package pendingrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/domain"
)

// TTL is the hold lifetime. Expiry is delegated entirely to the store;
// the application never checks timestamps itself.
const TTL = 15 * time.Minute

const keyPrefix = "pending:"

type Repository struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Repository {
	return &Repository{
		rdb: rdb,
	}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

func (r *Repository) Create(ctx context.Context, pending *domain.PendingRenting) error {
	if pending.SessionID == "" || pending.VehicleID == 0 {
		return errors.New("pending renting requires a session and a vehicle")
	}
	pending.CreatedAt = time.Now()

	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, key(pending.SessionID), data, TTL).Err(); err != nil {
		zap.L().Error("failed to store pending renting", zap.Error(err))
		return err
	}
	return nil
}

// FindBySession returns nil without error when no hold exists (or it
// already expired).
func (r *Repository) FindBySession(ctx context.Context, sessionID string) (*domain.PendingRenting, error) {
	data, err := r.rdb.Get(ctx, key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		zap.L().Error("failed to read pending renting", zap.Error(err))
		return nil, err
	}

	var pending domain.PendingRenting
	if err := json.Unmarshal(data, &pending); err != nil {
		zap.L().Error("corrupt pending renting record", zap.Error(err))
		return nil, err
	}
	return &pending, nil
}

// DeleteBySession removes the hold and reports whether one existed.
func (r *Repository) DeleteBySession(ctx context.Context, sessionID string) (bool, error) {
	deleted, err := r.rdb.Del(ctx, key(sessionID)).Result()
	if err != nil {
		zap.L().Error("failed to delete pending renting", zap.Error(err))
		return false, err
	}
	return deleted > 0, nil
}
