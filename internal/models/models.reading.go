// FilePath: server/readings/internal/models/models.reading.go
package models

import "encoding/json"

type SensorType string

const (
	Temperature SensorType = "temperature"
	Humidity    SensorType = "humidity"
)

// AllowedSensorTypes lists every sensor type a reading may carry
var AllowedSensorTypes = []SensorType{Temperature, Humidity}

// IsValid reports whether t is one of AllowedSensorTypes
func (t SensorType) IsValid() bool {
	for _, allowed := range AllowedSensorTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

const (
	MinReadingValue = 0
	MaxReadingValue = 100
)

// Reading represents a single sensor observation of a device
type Reading struct {
	DeviceUUID  string     `json:"device_uuid" db:"device_uuid"`
	Type        SensorType `json:"type" db:"type"`
	Value       int        `json:"value" db:"value"`
	DateCreated int64      `json:"date_created" db:"date_created"`
}

// ReadingInput is the raw POST payload before validation. Fields stay
// undecoded so a wrongly typed field is reported next to the others.
// DeviceUUID is accepted but the path parameter always wins.
type ReadingInput struct {
	Type        json.RawMessage `json:"type" swaggertype:"string"`
	Value       json.RawMessage `json:"value" swaggertype:"integer"`
	DateCreated json.RawMessage `json:"date_created" swaggertype:"integer"`
	DeviceUUID  json.RawMessage `json:"device_uuid" swaggertype:"string"`
}

// Present reports whether a payload field was sent with a non-null value
func Present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
