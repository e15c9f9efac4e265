package handler

import (
	"net/http"
	"time"

	"addressbook/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthResponse reports that the service is up.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds.
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// HealthCheck returns the service status and the current time.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UnixMilli(),
	})
}
