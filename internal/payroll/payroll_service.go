package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee"
	payrollerrors "github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/payroll/errors"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/apperror"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	ApproveAll(ctx context.Context) (ApprovalResult, error)
	History(ctx context.Context, username string) ([]RecordResponse, error)
	Preview(ctx context.Context, username string) (PreviewResponse, error)
	Summary(ctx context.Context) (SummaryResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		logger:       l,
	}
}

// ApproveAll settles every pending employee in one transaction: a history
// record is appended and the pending flag cleared for each, or nothing
// happens at all. Employees already settled are counted, not touched.
func (s *service) ApproveAll(ctx context.Context) (ApprovalResult, error) {
	rid := contextutil.GetRequestID(ctx)

	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("approve payroll load employees failed", zap.String("request_id", rid), zap.Error(err))
		return ApprovalResult{}, apperror.Persistence(err)
	}

	now := time.Now().UTC()
	records := make([]Record, 0, len(employees))
	usernames := make([]string, 0, len(employees))
	for username, emp := range employees {
		if !emp.Pending {
			continue
		}
		b := Compute(emp.MonthlySalary, emp.DaysWorked)
		records = append(records, Record{
			EmployeeUsername: username,
			ProcessedAt:      now,
			Gross:            b.Gross,
			Tax:              b.Tax,
			Net:              b.Net,
		})
		usernames = append(usernames, username)
	}

	result := ApprovalResult{
		Created:   len(records),
		Unchanged: len(employees) - len(records),
	}

	if len(records) == 0 {
		s.logger.Info("approve payroll no pending employees", zap.String("request_id", rid))
		return result, nil
	}

	// Records and pending flags move together or not at all; a failure on
	// either statement rolls back the whole batch.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.Append(ctx, records); err != nil {
			s.logger.Error("approve payroll append failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		if err := qtx.ClearPending(ctx, usernames); err != nil {
			s.logger.Error("approve payroll clear pending failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		return nil
	})
	if err != nil {
		return ApprovalResult{}, payrollerrors.ErrApprovalFailed
	}

	s.logger.Info("approve payroll success",
		zap.String("request_id", rid),
		zap.Int("created", result.Created),
		zap.Int("unchanged", result.Unchanged),
	)
	return result, nil
}

// History returns the employee's settled entries, most recent first.
func (s *service) History(ctx context.Context, username string) ([]RecordResponse, error) {
	if _, err := s.employeeRepo.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrEmployeeNotFound
		}
		return nil, apperror.Persistence(err)
	}

	records, err := s.repo.HistoryByUsername(ctx, username)
	if err != nil {
		s.logger.Error("load payroll history failed", zap.String("username", username), zap.Error(err))
		return nil, apperror.Persistence(err)
	}

	resp := make([]RecordResponse, len(records))
	for i, r := range records {
		resp[i] = RecordResponse{
			Gross:       r.Gross,
			Tax:         r.Tax,
			Net:         r.Net,
			ProcessedAt: r.ProcessedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

// Preview computes what an approval run would settle for one employee right
// now, without writing anything.
func (s *service) Preview(ctx context.Context, username string) (PreviewResponse, error) {
	emp, err := s.employeeRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PreviewResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PreviewResponse{}, apperror.Persistence(err)
	}

	return PreviewResponse{
		Username:      emp.Username,
		Name:          emp.Name,
		MonthlySalary: emp.MonthlySalary,
		DaysWorked:    emp.DaysWorked,
		Breakdown:     Compute(emp.MonthlySalary, emp.DaysWorked),
		Pending:       emp.Pending,
	}, nil
}

// Summary aggregates the dashboard numbers from a live read; pending nets
// use the same formula the approval run will apply.
func (s *service) Summary(ctx context.Context) (SummaryResponse, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("payroll summary load employees failed", zap.Error(err))
		return SummaryResponse{}, apperror.Persistence(err)
	}

	var summary SummaryResponse
	summary.TotalEmployees = len(employees)
	for _, emp := range employees {
		if emp.Status == employee.StatusActive {
			summary.ActiveEmployees++
		}
		if emp.Pending {
			summary.PendingPayroll++
			summary.PendingNetTotal += Compute(emp.MonthlySalary, emp.DaysWorked).Net
		}
	}
	return summary, nil
}
