package repo

import (
	"github.com/redis/go-redis/v9"

	budgetrepo "github.com/rentix/rentix/internal/repo/budget-repo"
	pendingrepo "github.com/rentix/rentix/internal/repo/pending-repo"
	userrepo "github.com/rentix/rentix/internal/repo/user-repo"
	vehiclerepo "github.com/rentix/rentix/internal/repo/vehicle-repo"
	verificationrepo "github.com/rentix/rentix/internal/repo/verification-repo"

	"github.com/rentix/rentix/internal/pg"
)

type Registry struct {
	VehicleRepo      *vehiclerepo.Repository
	UserRepo         *userrepo.Repository
	BudgetRepo       *budgetrepo.Repository
	PendingRepo      *pendingrepo.Repository
	VerificationRepo *verificationrepo.Repository
}

func New(db pg.Database, txManager pg.TXManager, rdb *redis.Client) *Registry {
	return &Registry{
		VehicleRepo:      vehiclerepo.New(db),
		UserRepo:         userrepo.New(db),
		BudgetRepo:       budgetrepo.New(db, txManager),
		PendingRepo:      pendingrepo.New(rdb),
		VerificationRepo: verificationrepo.New(db),
	}
}
