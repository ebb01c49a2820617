package employeeerrors

import (
	"net/http"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrUsernameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"username must not be empty",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"monthly_salary must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrInvalidDaysWorked = apperror.New(
		apperror.CodeInvalidInput,
		"days_worked must be a non-negative integer",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be Active or Inactive",
		http.StatusBadRequest,
	)
)
