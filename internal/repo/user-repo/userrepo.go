package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/domain"
	"github.com/rentix/rentix/internal/pg"
)

const selectColumns = `id, username, email, password_hash, role, active, deleted_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM users WHERE email = $1`, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Active, &user.DeletedAt, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM users WHERE id = $1`, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Active, &user.DeletedAt, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail returns whichever existing account collides with
// the given identity, so registration can report what is already taken.
func (repo *Repository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM users WHERE username = $1 OR email = $2`, username, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Active, &user.DeletedAt, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't check user existence", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// SoftDelete anonymizes the account while keeping the row. The
// placeholders are derived from the id, so the same account always maps
// to the same anonymized identity.
func (repo *Repository) SoftDelete(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE users
		SET username = 'deleted_user_' || id,
			email = 'deleted_' || id || '@anonymized.invalid',
			password_hash = '',
			active = FALSE,
			deleted_at = now()
		WHERE id = $1
	`
	tag, err := repo.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't soft-delete user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) HardDelete(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
