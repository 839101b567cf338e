package resources

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nuts "github.com/vaudience/go-nuts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := nuts.L
	nuts.L = zap.New(core).Sugar()
	t.Cleanup(func() { nuts.L = prev })
	return logs
}

func TestRespondWithErrorLogLevel(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.APIError
		want zapcore.Level
	}{
		{"missing parameter", errors.NewMissingParameterError("type"), zapcore.InfoLevel},
		{"empty result", errors.NewEmptyResultError(stderrors.New("no rows")), zapcore.InfoLevel},
		{"invalid reading", errors.NewFieldValidationError(errors.FieldErrors{"value": {"must be an integer"}}), zapcore.InfoLevel},
		{"database", errors.NewDatabaseError("query failed", stderrors.New("io")), zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)
			rec := httptest.NewRecorder()

			respondWithError(rec, tt.err)

			assert.Equal(t, tt.err.Code, rec.Code)
			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0].Level)
		})
	}
}

func TestDecodeQueryTreatsEmptyValuesAsAbsent(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantType  string
		wantStart *int64
		wantEnd   *int64
	}{
		{"empty end", "/?end=", "", nil, nil},
		{"empty start and end", "/?type=humidity&start=&end=", "humidity", nil, nil},
		{"empty type", "/?type=&end=5", "", nil, int64Ptr(5)},
		{"repeated with one empty", "/?start=&start=3", "", int64Ptr(3), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, apiErr := decodeQuery(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Nil(t, apiErr)
			assert.Equal(t, tt.wantType, query.Type)
			assert.Equal(t, tt.wantStart, query.Start)
			assert.Equal(t, tt.wantEnd, query.End)
		})
	}
}

func TestDecodeQueryRejectsNonInteger(t *testing.T) {
	_, apiErr := decodeQuery(httptest.NewRequest(http.MethodGet, "/?end=soon", nil))
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Contains(t, apiErr.Details, "end")
}

func int64Ptr(v int64) *int64 { return &v }
