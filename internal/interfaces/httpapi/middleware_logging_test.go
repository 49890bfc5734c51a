package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/tornea-league/internal/platform/logging"
)

func TestRequestLogging_RecordsStatus(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantLevel string
		wantField string
	}{
		{
			name:      "implicit ok",
			handler:   func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) },
			wantLevel: `"level":"INFO"`,
			wantField: `"status":200`,
		},
		{
			name:      "not found",
			handler:   func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) },
			wantLevel: `"level":"INFO"`,
			wantField: `"status":404`,
		},
		{
			name:      "server error",
			handler:   func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) },
			wantLevel: `"level":"ERROR"`,
			wantField: `"status":503`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := RequestLogging(logging.New(logging.LevelInfo, &buf), tc.handler)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))

			line := buf.String()
			if !strings.Contains(line, tc.wantLevel) || !strings.Contains(line, tc.wantField) {
				t.Fatalf("unexpected log line %s", line)
			}
			if !strings.Contains(line, `"path":"/v1/leagues"`) {
				t.Fatalf("expected path in log line %s", line)
			}
		})
	}
}
