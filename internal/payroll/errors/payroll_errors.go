package payrollerrors

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
	ErrApprovalFailed = apperror.New(
		apperror.CodePersistence,
		"payroll approval could not be saved; no employee was settled",
		http.StatusInternalServerError,
	)
)
