package authservice

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rentix/rentix/internal/apperrors"
	"github.com/rentix/rentix/internal/domain"
	"github.com/rentix/rentix/pkg/auth"
	"github.com/rentix/rentix/pkg/clients"
)

const defaultRole = "user"

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	SoftDelete(ctx context.Context, id int) (bool, error)
	HardDelete(ctx context.Context, id int) (bool, error)
}

type BudgetService interface {
	CreateBudget(ctx context.Context, userID int) (*domain.Budget, error)
	GetBudget(ctx context.Context, userID int) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID int) error
	ListItems(ctx context.Context, userID int) ([]domain.RentalItem, error)
	RentalActivity(ctx context.Context, userID int) (domain.RentalActivity, error)
}

type VehicleService interface {
	ReleaseOwned(ctx context.Context, userID int) (int64, error)
}

type VerificationRepo interface {
	Create(ctx context.Context, email string) (*domain.VerificationCode, error)
}

type Mailer interface {
	SendVerificationCode(ctx context.Context, username, email, code string) error
}

type Service struct {
	userRepo         UserRepo
	budgetService    BudgetService
	vehicleService   VehicleService
	verificationRepo VerificationRepo
	mailer           Mailer
	hashService      auth.HashServiceInterface
	jwtService       auth.JWTServiceInterface
	client           clients.HTTPClientI
	auth0Domain      string
}

func New(
	userRepo UserRepo,
	budgetService BudgetService,
	vehicleService VehicleService,
	verificationRepo VerificationRepo,
	mailer Mailer,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	client clients.HTTPClientI,
	auth0Domain string,
) *Service {
	return &Service{
		userRepo:         userRepo,
		budgetService:    budgetService,
		vehicleService:   vehicleService,
		verificationRepo: verificationRepo,
		mailer:           mailer,
		hashService:      hashService,
		jwtService:       jwtService,
		client:           client,
		auth0Domain:      auth0Domain,
	}
}

// Register creates the account and its budget. The two writes are not
// atomic; if the budget insert fails the account stays behind without
// one and profile reads will surface that.
func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not check existing accounts")
	}
	if existing != nil {
		if existing.Username == username {
			return nil, apperrors.Conflict("the username is already taken")
		}
		return nil, apperrors.Conflict("the email is already registered")
	}

	hash, err := s.hashService.HashPassword(password)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not process the password")
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         defaultRole,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "could not create the account")
	}

	if _, err := s.budgetService.CreateBudget(ctx, user.ID); err != nil {
		zap.L().Error("account created without a budget", zap.Int("userID", user.ID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials without revealing which part was
// wrong.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not check credentials")
	}
	if user == nil || !user.Active || !s.hashService.ComparePassword(user.PasswordHash, password) {
		return nil, apperrors.Unauthorized("wrong email or password")
	}
	return user, nil
}

type userinfo struct {
	Sub      string `json:"sub"`
	Nickname string `json:"nickname"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// FederatedLogin resolves an identity-provider access token into a
// local account, creating one on first login.
func (s *Service) FederatedLogin(ctx context.Context, accessToken string) (*domain.User, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+accessToken)

	status, body, _, err := s.client.Get(s.auth0Domain+"/userinfo", headers)
	if err != nil {
		zap.L().Error("identity provider unreachable", zap.Error(err))
		return nil, apperrors.Wrap(err, "could not reach the identity provider")
	}
	if status != http.StatusOK {
		return nil, apperrors.Unauthorized("the identity provider rejected the token")
	}

	var info userinfo
	if err := json.Unmarshal(body, &info); err != nil || info.Email == "" {
		return nil, apperrors.Unauthorized("the identity provider returned no usable identity")
	}

	user, err := s.userRepo.FindByEmail(ctx, info.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not check existing accounts")
	}
	if user != nil {
		if !user.Active {
			return nil, apperrors.Unauthorized("the account has been deactivated")
		}
		return user, nil
	}

	username := info.Nickname
	if username == "" {
		username = strings.SplitN(info.Email, "@", 2)[0]
	}
	if taken, err := s.userRepo.FindByUsernameOrEmail(ctx, username, info.Email); err != nil {
		return nil, apperrors.Wrap(err, "could not check existing accounts")
	} else if taken != nil {
		username = username + "_" + strings.TrimPrefix(info.Sub, "auth0|")
	}

	user, err = s.userRepo.Create(ctx, &domain.User{
		Username: username,
		Email:    info.Email,
		Role:     defaultRole,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "could not create the account")
	}
	if _, err := s.budgetService.CreateBudget(ctx, user.ID); err != nil {
		zap.L().Error("account created without a budget", zap.Int("userID", user.ID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	return s.jwtService.GenerateJWT(user.ID, user.Username, user.Role, time.Now().Add(auth.TokenTTL))
}

// Delete removes the account according to its rental history. Active
// rentals block deletion; finished rentals keep the row anonymized so
// history stays consistent; a clean account is removed outright. The
// returned activity tells the caller which path was taken.
func (s *Service) Delete(ctx context.Context, userID int) (domain.RentalActivity, error) {
	activity, err := s.budgetService.RentalActivity(ctx, userID)
	if err != nil {
		return activity, err
	}

	switch activity {
	case domain.RentalActivityActive:
		return activity, apperrors.BadRequest("the account still has rentals in progress")

	case domain.RentalActivityPast:
		if _, err := s.vehicleService.ReleaseOwned(ctx, userID); err != nil {
			return activity, err
		}
		ok, err := s.userRepo.SoftDelete(ctx, userID)
		if err != nil {
			return activity, apperrors.Wrap(err, "could not deactivate the account")
		}
		if !ok {
			return activity, apperrors.NotFound("the account does not exist")
		}
		return activity, nil

	default:
		if _, err := s.vehicleService.ReleaseOwned(ctx, userID); err != nil {
			return activity, err
		}
		if err := s.budgetService.DeleteBudget(ctx, userID); err != nil {
			return activity, err
		}
		ok, err := s.userRepo.HardDelete(ctx, userID)
		if err != nil {
			return activity, apperrors.Wrap(err, "could not delete the account")
		}
		if !ok {
			return activity, apperrors.NotFound("the account does not exist")
		}
		return activity, nil
	}
}

// Profile gathers the account, its budget and its rented vehicles.
func (s *Service) Profile(ctx context.Context, userID int) (*domain.User, *domain.Budget, []domain.RentalItem, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "could not fetch the account")
	}
	if user == nil || !user.Active {
		return nil, nil, nil, apperrors.NotFound("the account does not exist")
	}

	budget, err := s.budgetService.GetBudget(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.budgetService.ListItems(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	return user, budget, items, nil
}

// RequestVerification issues a short-lived code and mails it. The mail
// itself is sent asynchronously.
func (s *Service) RequestVerification(ctx context.Context, username, email string) error {
	existing, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return apperrors.Wrap(err, "could not check existing accounts")
	}
	if existing != nil {
		if existing.Username == username {
			return apperrors.Conflict("the username is already taken")
		}
		return apperrors.Conflict("the email is already registered")
	}

	vc, err := s.verificationRepo.Create(ctx, email)
	if err != nil {
		return apperrors.Wrap(err, "could not issue a verification code")
	}

	if err := s.mailer.SendVerificationCode(ctx, username, email, vc.Code); err != nil {
		zap.L().Error("verification mail not queued", zap.String("email", email), zap.Error(err))
		return apperrors.Internal("could not send the verification code")
	}
	return nil
}
