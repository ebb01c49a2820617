package employee

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	employeeerrors "github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee/errors"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const DirectoryCacheKey = "employees:directory"

const directoryCacheTTL = 1 * time.Hour

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, username string, req UpsertEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, username string) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	Directory(ctx context.Context) ([]DirectoryEntry, error)
	Delete(ctx context.Context, username string) error
}

type service struct {
	db              *gorm.DB
	repo            Repository
	rdb             *redis.Client
	sf              *singleflight.Group
	defaultPassword string
	logger          *zap.Logger
}

// NewService wires the employee record lifecycle. defaultPassword is the
// injected onboarding credential assigned when an admin saves a brand-new
// employee without choosing a password. It is an onboarding convenience, not
// a security control.
func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, defaultPassword string, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:              db,
		repo:            repo,
		rdb:             rdb,
		sf:              &singleflight.Group{},
		defaultPassword: defaultPassword,
		logger:          l,
	}
}

// Upsert saves an employee record under its username. Every save, including
// edits that do not touch pay fields, re-queues the employee for payroll
// (pending = true); that matches the system this replaces.
func (s *service) Upsert(ctx context.Context, username string, req UpsertEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return EmployeeResponse{}, employeeerrors.ErrUsernameRequired
	}

	salary, err := strconv.ParseFloat(strings.TrimSpace(req.MonthlySalary), 64)
	if err != nil || salary < 0 {
		s.logger.Warn("upsert employee rejected salary",
			zap.String("request_id", rid),
			zap.String("username", username),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}

	days, err := strconv.Atoi(strings.TrimSpace(req.DaysWorked))
	if err != nil || days < 0 {
		s.logger.Warn("upsert employee rejected days worked",
			zap.String("request_id", rid),
			zap.String("username", username),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDaysWorked
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusActive
	}
	if status != StatusActive && status != StatusInactive {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}

	department := strings.TrimSpace(req.Department)
	if department == "" {
		department = DefaultDepartment
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByUsername(ctx, username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("upsert employee lookup failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		hash, err := s.resolvePasswordHash(req.Password, existing)
		if err != nil {
			s.logger.Error("upsert employee hash failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		// The row is replaced wholesale on every save; both timestamps refresh.
		now := time.Now().UTC()
		emp := &Employee{
			Username:      username,
			Name:          strings.TrimSpace(req.Name),
			Email:         strings.TrimSpace(req.Email),
			EmpID:         strings.TrimSpace(req.EmpID),
			MonthlySalary: salary,
			DaysWorked:    days,
			Department:    department,
			Status:        status,
			Pending:       true,
			PasswordHash:  hash,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := qtx.UpsertMany(ctx, map[string]*Employee{username: emp}); err != nil {
			s.logger.Error("upsert employee persist failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		return nil
	})
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateDirectory(ctx)

	// Re-read so the caller observes exactly what was durably written.
	stored, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("upsert employee re-read failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("upsert employee success",
		zap.String("request_id", rid),
		zap.String("username", username),
	)

	return mapToResponse(*stored), nil
}

func (s *service) Get(ctx context.Context, username string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, mapToResponse(emp))
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].Username < resp[j].Username })
	return resp, nil
}

// Directory is a read-through cache of the lightweight employee listing.
// The cache is invalidated after every mutating call, so staleness is
// bounded by a single write.
func (s *service) Directory(ctx context.Context) ([]DirectoryEntry, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DirectoryCacheKey).Result(); err == nil {
			var entries []DirectoryEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DirectoryCacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		entries := make([]DirectoryEntry, 0, len(employees))
		for _, emp := range employees {
			entries = append(entries, DirectoryEntry{
				Username:   emp.Username,
				Name:       emp.Name,
				EmpID:      emp.EmpID,
				Department: emp.Department,
				Status:     emp.Status,
			})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

		if s.rdb != nil {
			if data, err := json.Marshal(entries); err == nil {
				s.rdb.Set(ctx, DirectoryCacheKey, data, directoryCacheTTL)
			}
		}

		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]DirectoryEntry), nil
}

// Delete removes the employee and cascades its payroll history. A missing
// username is an error, not a silent no-op.
func (s *service) Delete(ctx context.Context, username string) error {
	rid := contextutil.GetRequestID(ctx)

	// The history delete and the employee delete share one transaction so a
	// failure between them leaves both tables untouched.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByUsername(ctx, username); err != nil {
			return err
		}

		if err := qtx.Delete(ctx, username); err != nil {
			s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		return nil
	})
	if err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateDirectory(ctx)

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("username", username),
	)
	return nil
}

// resolvePasswordHash decides the stored credential: a supplied plaintext is
// hashed and replaces whatever existed; empty keeps the current hash for a
// known username and falls back to the configured default for a new one.
func (s *service) resolvePasswordHash(plaintext string, existing *Employee) (string, error) {
	if plaintext != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(hash), nil
	}

	if existing != nil {
		return existing.PasswordHash, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *service) invalidateDirectory(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DirectoryCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee directory cache",
			zap.Error(err),
			zap.String("key", DirectoryCacheKey),
		)
	}
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		Username:      emp.Username,
		Name:          emp.Name,
		Email:         emp.Email,
		EmpID:         emp.EmpID,
		MonthlySalary: emp.MonthlySalary,
		DaysWorked:    emp.DaysWorked,
		Department:    emp.Department,
		Status:        emp.Status,
		Pending:       emp.Pending,
		CreatedAt:     emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     emp.UpdatedAt.Format(time.RFC3339),
	}
}
