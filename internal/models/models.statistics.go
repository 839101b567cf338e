package models

// Statistic names a single-valued aggregate over reading values
type Statistic string

const (
	StatMin    Statistic = "min"
	StatMax    Statistic = "max"
	StatMean   Statistic = "mean"
	StatMedian Statistic = "median"
	StatMode   Statistic = "mode"
)

// StatisticResult is the response body of the single-valued aggregate endpoints.
// Value is an int for min, max and mode, a float64 for mean and median,
// and nil when the mode is not unique.
type StatisticResult struct {
	DeviceUUID string     `json:"device_uuid"`
	DeviceType SensorType `json:"device_type"`
	Value      any        `json:"value"`
}

// QuartileResult is the response body of the quartiles endpoint
type QuartileResult struct {
	DeviceUUID    string     `json:"device_uuid"`
	DeviceType    SensorType `json:"device_type"`
	FirstQuartile float64    `json:"first_quartile"`
	ThirdQuartile float64    `json:"third_quartile"`
}
