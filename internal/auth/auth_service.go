package auth

import (
	"context"
	"time"

	autherrors "github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/auth/errors"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Authenticate reports whether the plaintext matches the stored employee
	// credential. It never errors for a missing user: absent and mismatched
	// are both simply false.
	Authenticate(ctx context.Context, username, password string) bool

	Login(ctx context.Context, username, password string) (string, AuthResponse, error)
	AdminLogin(ctx context.Context, username, password string) (string, AuthResponse, error)
	GetMe(ctx context.Context, username, role string) (AuthResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	creds        CredentialSource
	jwtSecret    []byte
	tokenTTL     time.Duration
	logger       *zap.Logger
}

func NewService(
	employeeRepo employee.Repository,
	creds CredentialSource,
	jwtSecret string,
	tokenTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		employeeRepo: employeeRepo,
		creds:        creds,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		logger:       l,
	}
}

func (s *service) Authenticate(ctx context.Context, username, password string) bool {
	emp, err := s.employeeRepo.FindByUsername(ctx, username)
	if err != nil {
		// Missing user and store failure both read as a failed login; the
		// plaintext never reaches a log line either way.
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) == nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, AuthResponse, error) {
	if !s.Authenticate(ctx, username, password) {
		s.logger.Warn("employee login rejected", zap.String("username", username))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	emp, err := s.employeeRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(username, RoleEmployee)
	if err != nil {
		s.logger.Error("employee token generation failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("employee login success", zap.String("username", username))
	return token, AuthResponse{
		Username:   emp.Username,
		Name:       emp.Name,
		Role:       RoleEmployee,
		EmpID:      emp.EmpID,
		Department: emp.Department,
	}, nil
}

// AdminLogin checks against the injected credential source. The
// administrator is not an employee record; it is a separate principal.
func (s *service) AdminLogin(ctx context.Context, username, password string) (string, AuthResponse, error) {
	if !s.creds.VerifyAdmin(username, password) {
		s.logger.Warn("admin login rejected")
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(username, RoleAdmin)
	if err != nil {
		s.logger.Error("admin token generation failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("admin login success")
	return token, AuthResponse{
		Username: username,
		Name:     "Administrator",
		Role:     RoleAdmin,
	}, nil
}

func (s *service) GetMe(ctx context.Context, username, role string) (AuthResponse, error) {
	if role == RoleAdmin {
		return AuthResponse{
			Username: username,
			Name:     "Administrator",
			Role:     RoleAdmin,
		}, nil
	}

	emp, err := s.employeeRepo.FindByUsername(ctx, username)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	return AuthResponse{
		Username:   emp.Username,
		Name:       emp.Name,
		Role:       RoleEmployee,
		EmpID:      emp.EmpID,
		Department: emp.Department,
	}, nil
}

func (s *service) generateToken(username, role string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
