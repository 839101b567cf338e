package resources

import (
	"context"
	"net/http"
	"time"

	"github.com/itsatony/w4b_v3/server/readings/api/middleware"
	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
	"github.com/itsatony/w4b_v3/server/readings/internal/service"
	"github.com/swaggo/swag"
	nuts "github.com/vaudience/go-nuts"
)

const healthTimeout = 2 * time.Second

// HealthHandlers serves liveness and API description endpoints
type HealthHandlers struct {
	service service.ReadingService
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errors.APIError
// @Router /health [get]
func (h *HealthHandlers) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.service.Ping(ctx); err != nil {
		respondWithError(w, errors.NewUnavailableError("database unavailable", err).
			WithRequestID(middleware.GetRequestID(r.Context())))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": nuts.GetVersion(),
	})
}

// Docs serves the registered OpenAPI document
func (h *HealthHandlers) Docs(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		respondWithError(w, errors.NewInternalError("failed to render API document", err).
			WithRequestID(middleware.GetRequestID(r.Context())))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
