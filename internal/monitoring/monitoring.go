package monitoring

import (
	"sort"
	"strings"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

const (
	EventReadingRecorded = "reading_recorded"
	EventEmptyAggregate  = "empty_aggregate"
)

// Service records notable domain events
type Service struct{}

// NewService creates a new monitoring service
func NewService() *Service {
	return &Service{}
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	nuts.L.Infof("[Monitoring] Event %s at %d %s", eventName, time.Now().Unix(), FormatLabels(labels))
}

// FormatLabels renders labels as sorted key=value pairs
func FormatLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + labels[k]
	}
	return strings.Join(parts, " ")
}
