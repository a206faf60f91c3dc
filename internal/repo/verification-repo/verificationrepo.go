package verificationrepo

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/domain"
	"github.com/rentix/rentix/internal/pg"
)

// CodeTTL mirrors the reservation window; the sweeper purges codes older
// than this.
const CodeTTL = "15 minutes"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create stores a fresh 6-digit code for the email.
func (r *Repository) Create(ctx context.Context, email string) (*domain.VerificationCode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return nil, err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	query := `
		INSERT INTO verification_codes (email, code)
		VALUES ($1, $2)
		RETURNING id, email, code, created_at
	`
	var vc domain.VerificationCode
	err = r.db.QueryRow(ctx, query, email, code).Scan(&vc.ID, &vc.Email, &vc.Code, &vc.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create verification code", zap.Error(err))
		return nil, err
	}
	return &vc, nil
}

// PurgeExpired drops codes past their window. Runs from the sweeper.
func (r *Repository) PurgeExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM verification_codes WHERE created_at <= now() - interval '` + CodeTTL + `'`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("failed to purge verification codes", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
