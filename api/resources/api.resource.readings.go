package resources

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/itsatony/w4b_v3/server/readings/api/middleware"
	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
	"github.com/itsatony/w4b_v3/server/readings/internal/models"
	"github.com/itsatony/w4b_v3/server/readings/internal/service"
)

// ReadingHandlers encapsulates the reading-related HTTP handlers
type ReadingHandlers struct {
	service service.ReadingService
}

// @Summary Record a reading
// @Description Store one sensor reading for a device. date_created defaults to now.
// @Tags readings
// @Accept json
// @Produce json
// @Param device_uuid path string true "Device UUID"
// @Param reading body models.ReadingInput true "Reading"
// @Success 201 {object} models.Reading
// @Failure 400 {object} errors.APIError
// @Router /devices/{device_uuid}/readings/ [post]
func (h *ReadingHandlers) CreateReading(w http.ResponseWriter, r *http.Request) {
	deviceUUID := mux.Vars(r)["device_uuid"]
	requestID := middleware.GetRequestID(r.Context())

	var input models.ReadingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	reading, err := h.service.RecordReading(r.Context(), deviceUUID, input)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, reading)
}

// @Summary List readings
// @Description List a device's readings, optionally filtered by type and creation time
// @Tags readings
// @Produce json
// @Param device_uuid path string true "Device UUID"
// @Param type query string false "Sensor type (temperature, humidity)"
// @Param start query int false "Earliest date_created (epoch seconds, inclusive)"
// @Param end query int false "Latest date_created (epoch seconds, inclusive)"
// @Success 200 {array} models.Reading
// @Failure 400 {object} errors.APIError
// @Router /devices/{device_uuid}/readings/ [get]
func (h *ReadingHandlers) ListReadings(w http.ResponseWriter, r *http.Request) {
	deviceUUID := mux.Vars(r)["device_uuid"]
	requestID := middleware.GetRequestID(r.Context())

	query, apiErr := decodeQuery(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	readings, err := h.service.ListReadings(r.Context(), query.Filter(deviceUUID))
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, readings)
}

// @Summary Minimum reading
// @Tags statistics
// @Produce json
// @Param device_uuid path string true "Device UUID"
// @Param type query string true "Sensor type"
// @Param start query int false "Start (epoch seconds)"
// @Param end query int false "End (epoch seconds)"
// @Success 200 {object} models.StatisticResult
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /devices/{device_uuid}/readings/min/ [get]
func (h *ReadingHandlers) Min(w http.ResponseWriter, r *http.Request) {
	h.statistic(w, r, models.StatMin)
}

// @Summary Maximum reading
// @Tags statistics
// @Produce json
// @Param device_uuid path string true "Device UUID"
// @Param type query string true "Sensor type"
// @Param start query int false "Start (epoch seconds)"
// @Param end query int false "End (epoch seconds)"
// @Success 200 {object} models.StatisticResult
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /devices/{device_uuid}/readings/max/ [get]
func (h *ReadingHandlers) Max(w http.ResponseWriter, r *http.Request) {
	h.statistic(w, r, models.StatMax)
}

// @Summary Median reading
// @Tags statistics
// @Produce json
// @Param device_uuid path string true "Device UUID"
// @Param type query string true "Sensor type"
// @Param start query int false "Start (epoch seconds)"
// @Param end query int false "End (epoch seconds)"
// @Success 200 {object} models.StatisticResult
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /devices/{device_uuid}/readings/median/ [get]
func (h *ReadingHandlers) Median(w http.ResponseWriter, r *http.Request) {
	h.statistic(w, r, models.StatMedian)
}

// @Summary Mean reading
// @Tags statistics
// @Produce json
// @Param device_uuid path string true "Device UUID"
// @Param type query string true "Sensor type"
// @Param start query int false "Start (epoch seconds)"
// @Param end query int false "End (epoch seconds)"
// @Success 200 {object} models.StatisticResult
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /devices/{device_uuid}/readings/mean/ [get]
func (h *ReadingHandlers) Mean(w http.ResponseWriter, r *http.Request) {
	h.statistic(w, r, models.StatMean)
}

// @Summary Mode of readings
// @Description value is null unless exactly one value has the highest frequency
// @Tags statistics
// @Produce json
// @Param device_uuid path string true "Device UUID"
// @Param type query string true "Sensor type"
// @Param start query int false "Start (epoch seconds)"
// @Param end query int false "End (epoch seconds)"
// @Success 200 {object} models.StatisticResult
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /devices/{device_uuid}/readings/mode/ [get]
func (h *ReadingHandlers) Mode(w http.ResponseWriter, r *http.Request) {
	h.statistic(w, r, models.StatMode)
}

// @Summary First and third quartile
// @Description Quartiles are linearly interpolated between order statistics
// @Description and returned as JSON numbers with a fractional part (62.5), not truncated to integers.
// @Tags statistics
// @Produce json
// @Param device_uuid path string true "Device UUID"
// @Param type query string true "Sensor type"
// @Param start query int true "Start (epoch seconds)"
// @Param end query int true "End (epoch seconds)"
// @Success 200 {object} models.QuartileResult
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /devices/{device_uuid}/readings/quartiles/ [get]
func (h *ReadingHandlers) Quartiles(w http.ResponseWriter, r *http.Request) {
	deviceUUID := mux.Vars(r)["device_uuid"]
	requestID := middleware.GetRequestID(r.Context())

	query, apiErr := decodeQuery(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	switch {
	case query.Type == "":
		respondWithError(w, errors.NewMissingParameterError("type").WithRequestID(requestID))
		return
	case query.Start == nil:
		respondWithError(w, errors.NewMissingParameterError("start").WithRequestID(requestID))
		return
	case query.End == nil:
		respondWithError(w, errors.NewMissingParameterError("end").WithRequestID(requestID))
		return
	}

	result, err := h.service.ComputeQuartiles(r.Context(), query.Filter(deviceUUID))
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *ReadingHandlers) statistic(w http.ResponseWriter, r *http.Request, stat models.Statistic) {
	deviceUUID := mux.Vars(r)["device_uuid"]
	requestID := middleware.GetRequestID(r.Context())

	query, apiErr := decodeQuery(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	result, err := h.service.ComputeStatistic(r.Context(), query.Filter(deviceUUID), stat)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Helper functions

func decodeQuery(r *http.Request) (models.ReadingQuery, *errors.APIError) {
	var query models.ReadingQuery
	if err := queryDecoder.Decode(&query, withoutEmpty(r.URL.Query())); err != nil {
		details := errors.FieldErrors{}
		if multi, ok := err.(schema.MultiError); ok {
			for field, fieldErr := range multi {
				details.Add(field, fieldErr.Error())
			}
		}
		return query, errors.NewValidationError("invalid query parameters", err).WithDetails(details)
	}
	return query, nil
}

// withoutEmpty drops parameters sent without a value, so "end=" means no bound
func withoutEmpty(values url.Values) url.Values {
	out := url.Values{}
	for key, vals := range values {
		for _, v := range vals {
			if v != "" {
				out.Add(key, v)
			}
		}
	}
	return out
}
