package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	userRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/user"
	"github.com/quickcourt/QC-BookingService/internal/service/users/models"
)

// Service сервис регистрации и аутентификации пользователей
type Service struct {
	userRepo    UserRepository
	tokenIssuer TokenIssuer
	logger      Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokenIssuer TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя с ролью customer
// и сразу выдаёт токен доступа
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateRegistration(name, email, req.Password); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokenIssuer.Issue(created.ID, string(created.Role), created.Email)
	if err != nil {
		s.logger.Error("Register: failed to issue token for user=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: registered user id=%d email=%s", created.ID, created.Email)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(created),
	}, nil
}

// Login проверяет учётные данные и выдаёт токен доступа.
// Несуществующий email и неверный пароль дают одинаковую ошибку.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(user.ID, string(user.Role), user.Email)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

func validateRegistration(name, email, password string) error {
	if name == "" || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	return nil
}
