package payroll

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Append(ctx context.Context, records []Record) error
	ClearPending(ctx context.Context, usernames []string) error
	HistoryByUsername(ctx context.Context, username string) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to a transaction handle so every statement
// executes on that transaction's connection.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Append(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

// ClearPending flips the settled flag on the employees whose records were
// just appended. Runs inside the same approval transaction.
func (r *repository) ClearPending(ctx context.Context, usernames []string) error {
	if len(usernames) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Table("employees").
		Where("username IN ?", usernames).
		Update("pending", false).Error
}

func (r *repository) HistoryByUsername(ctx context.Context, username string) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Where("employee_username = ?", username).
		Order("processed_at DESC").
		Find(&records).Error
	return records, err
}
