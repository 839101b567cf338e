package models

// ReadingFilter is a conjunction of predicates over the readings table.
// DeviceUUID is always applied; the rest only when set.
type ReadingFilter struct {
	DeviceUUID string
	Type       SensorType
	Start      *int64
	End        *int64
}

// ReadingQuery is the query-string shape shared by the readings endpoints
type ReadingQuery struct {
	Type  string `schema:"type"`
	Start *int64 `schema:"start"`
	End   *int64 `schema:"end"`
}

// Filter builds the storage filter for a device from the decoded query
func (q ReadingQuery) Filter(deviceUUID string) ReadingFilter {
	return ReadingFilter{
		DeviceUUID: deviceUUID,
		Type:       SensorType(q.Type),
		Start:      q.Start,
		End:        q.End,
	}
}
