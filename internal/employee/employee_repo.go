package employee

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) (map[string]Employee, error)
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	UpsertMany(ctx context.Context, employees map[string]*Employee) error
	Delete(ctx context.Context, username string) error
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

// FindAll mirrors the store contract: the whole table as a map keyed by
// username.
func (r *repository) FindAll(ctx context.Context) (map[string]Employee, error) {
	var rows []Employee
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	employees := make(map[string]Employee, len(rows))
	for _, e := range rows {
		employees[e.Username] = e
	}
	return employees, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		First(&emp, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpsertMany is idempotent per key: an existing username is overwritten in
// full, last writer wins.
func (r *repository) UpsertMany(ctx context.Context, employees map[string]*Employee) error {
	for _, emp := range employees {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "username"}},
				UpdateAll: true,
			}).
			Create(emp).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the employee and its payroll history. History rows go first
// so the employee row never dangles references mid-delete; both statements
// run on whatever handle the repository is bound to.
func (r *repository) Delete(ctx context.Context, username string) error {
	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM payroll_records WHERE employee_username = ?", username).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&Employee{}, "username = ?", username).Error
}
