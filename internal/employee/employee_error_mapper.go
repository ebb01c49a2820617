package employee

import (
	"errors"
	"net/http"

	employeeerrors "github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee/errors"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23xxx = integrity violations; anything else is the store rejecting
		// the write for operational reasons.
		if pgErr.Code == "23505" {
			return apperror.Wrap(err, apperror.CodeConflict, "employee already exists", http.StatusConflict)
		}
	}

	return apperror.Persistence(err)
}
