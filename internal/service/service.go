package service

import (
	"github.com/rentix/rentix/internal/config"
	"github.com/rentix/rentix/internal/repo"
	"github.com/rentix/rentix/internal/service/authservice"
	"github.com/rentix/rentix/internal/service/budgetservice"
	"github.com/rentix/rentix/internal/service/rentingservice"
	"github.com/rentix/rentix/internal/service/vehicleservice"
	"github.com/rentix/rentix/pkg/auth"
	"github.com/rentix/rentix/pkg/clients"
	"github.com/rentix/rentix/pkg/mailer"
	"github.com/rentix/rentix/pkg/workerpool"
)

const mailWorkers = 4

type Services struct {
	AuthService    *authservice.Service
	BudgetService  *budgetservice.Service
	VehicleService *vehicleservice.Service
	RentingService *rentingservice.Service

	mailPool workerpool.WorkerPoolI
}

func New(cfg *config.Config, repos *repo.Registry) *Services {
	budgetService := budgetservice.New(repos.BudgetRepo)
	vehicleService := vehicleservice.New(repos.VehicleRepo)
	rentingService := rentingservice.New(vehicleService, budgetService, repos.PendingRepo)

	httpClient := clients.NewHTTPClient()
	mailPool := workerpool.New(mailWorkers)
	mailService := mailer.New(cfg.MailerAddr, cfg.MailerAPIKey, httpClient, mailPool)

	authService := authservice.New(
		repos.UserRepo,
		budgetService,
		vehicleService,
		repos.VerificationRepo,
		mailService,
		&auth.HashService{},
		auth.NewJWTService(cfg.JWTSecret),
		httpClient,
		cfg.Auth0Domain,
	)

	return &Services{
		AuthService:    authService,
		BudgetService:  budgetService,
		VehicleService: vehicleService,
		RentingService: rentingService,
		mailPool:       mailPool,
	}
}

// Close drains the mail pool; queued verification mails finish sending.
func (s *Services) Close() {
	s.mailPool.Close()
}
