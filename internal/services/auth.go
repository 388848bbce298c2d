package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"istanfix/internal/config"
	"istanfix/internal/logger"
	"istanfix/internal/models"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type AuthService struct {
	db   *bun.DB
	cfg  *config.Config
	logr *logger.Logger
}

func NewAuthService(db *bun.DB, cfg *config.Config, logr *logger.Logger) *AuthService {
	return &AuthService{db: db, cfg: cfg, logr: logr}
}

// HashPassword uses bcrypt
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	GovVerification string `json:"gov_verification_code"`
}

// Signup registers a new user. Government accounts require the configured
// verification code.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, validation("Name, email, and password are required.")
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, validation("Invalid email format.")
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleGovernment {
		return nil, validation("Invalid role.")
	}
	if role == models.RoleGovernment && in.GovVerification != s.cfg.GovVerificationCode {
		return nil, ErrForbidden
	}

	// Pre-check; a concurrent signup can still lose the race, in which case
	// the UNIQUE constraint on email rejects the insert.
	exists, err := s.db.NewSelect().Model((*models.User)(nil)).Where("email = ?", in.Email).Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, validation("Email already registered.")
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           strings.TrimSpace(in.Name),
		Email:          in.Email,
		HashedPassword: hashed,
		Role:           role,
	}
	if _, err := s.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, err
	}

	s.logr.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}

// Login verifies credentials and returns the user. Unknown email and wrong
// password both map to the same generic error to avoid account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, validation("Email and password are required.")
	}

	var user models.User
	err := s.db.NewSelect().Model(&user).Where("email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, validation("Invalid email or password.")
		}
		return nil, err
	}
	if err := ComparePassword(user.HashedPassword, password); err != nil {
		return nil, validation("Invalid email or password.")
	}

	return &user, nil
}
