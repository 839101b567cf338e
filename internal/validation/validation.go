// Package validation checks incoming readings and query parameters.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
	"github.com/itsatony/w4b_v3/server/readings/internal/models"
)

func allowedTypes() string {
	names := make([]string, len(models.AllowedSensorTypes))
	for i, t := range models.AllowedSensorTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// ValidateReading checks a POST payload and normalizes it into a Reading.
// All violated fields are reported together. date_created defaults to now.
func ValidateReading(deviceUUID string, input models.ReadingInput, now time.Time) (*models.Reading, error) {
	fields := errors.FieldErrors{}

	if strings.TrimSpace(deviceUUID) == "" {
		fields.Add("device_uuid", "is required")
	}

	var sensorType models.SensorType
	var rawType string
	switch {
	case !models.Present(input.Type):
		fields.Add("type", "is required")
	case json.Unmarshal(input.Type, &rawType) != nil:
		fields.Add("type", "must be a string")
	case !models.SensorType(rawType).IsValid():
		fields.Add("type", fmt.Sprintf("must be one of: %s", allowedTypes()))
	default:
		sensorType = models.SensorType(rawType)
	}

	var value int64
	if !models.Present(input.Value) {
		fields.Add("value", "is required")
	} else if v, err := decodeInteger(input.Value); err != nil {
		fields.Add("value", "must be an integer")
	} else if v < models.MinReadingValue || v > models.MaxReadingValue {
		fields.Add("value", fmt.Sprintf("must be between %d and %d", models.MinReadingValue, models.MaxReadingValue))
	} else {
		value = v
	}

	dateCreated := now.Unix()
	if models.Present(input.DateCreated) {
		if d, err := decodeInteger(input.DateCreated); err != nil {
			fields.Add("date_created", "must be an integer epoch timestamp")
		} else {
			dateCreated = d
		}
	}

	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	return &models.Reading{
		DeviceUUID:  deviceUUID,
		Type:        sensorType,
		Value:       int(value),
		DateCreated: dateCreated,
	}, nil
}

// ValidateSensorType checks a required type query parameter
func ValidateSensorType(raw string) (models.SensorType, error) {
	if raw == "" {
		return "", errors.NewMissingParameterError("type")
	}
	t := models.SensorType(raw)
	if !t.IsValid() {
		return "", errors.NewValidationError("a valid type parameter is required", nil).
			WithDetails(errors.FieldErrors{"type": {fmt.Sprintf("must be one of: %s", allowedTypes())}})
	}
	return t, nil
}

// decodeInteger reads a JSON number, or a string holding one, as an integer
func decodeInteger(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return parseInteger(n.String())
}

// parseInteger accepts integral JSON numbers, including forms like 22.0
func parseInteger(s string) (int64, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int64(f), nil
}
