// FilePath: server/readings/api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
	"github.com/itsatony/w4b_v3/server/readings/internal/service"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Readings *ReadingHandlers
	Health   *HealthHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc service.ReadingService) *Resources {
	return &Resources{
		Readings: &ReadingHandlers{service: svc},
		Health:   &HealthHandlers{service: svc},
	}
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	if err.Code >= http.StatusInternalServerError {
		nuts.L.Errorf("[API] %s", err.Error())
	} else {
		nuts.L.Infof("[API] %s", err.Error())
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
