package autherrors

import (
	"net/http"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials deliberately covers both "no such user" and
	// "wrong password" so the caller cannot tell which field was wrong.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid username or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token has expired",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to this resource",
		http.StatusForbidden,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"could not generate session token",
		http.StatusInternalServerError,
	)
)
