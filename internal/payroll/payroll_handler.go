package payroll

import (
	"net/http"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/apperror"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// ApproveAll runs the batch approval. Idempotent in effect: a second call
// right after a successful one finds nothing pending and settles nobody.
func (h *Handler) ApproveAll(c *gin.Context) {
	h.logger.Debug("http approve payroll")

	result, err := h.service.ApproveAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) History(c *gin.Context) {
	username := c.Param("username")

	if !h.selfOrAdmin(c, username) {
		return
	}

	resp, err := h.service.History(c.Request.Context(), username)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Preview(c *gin.Context) {
	username := c.Param("username")

	if !h.selfOrAdmin(c, username) {
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), username)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	resp, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// selfOrAdmin guards per-employee views: employees see their own payroll
// only, admins see everyone's.
func (h *Handler) selfOrAdmin(c *gin.Context, username string) bool {
	if c.GetString("role") == "admin" || c.GetString("username") == username {
		return true
	}
	response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
	return false
}
