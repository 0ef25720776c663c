package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParticipantMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "header identifies the caller",
			header: "b",
			want:   "b",
		},
		{
			name: "missing header falls back to the app user",
			want: DefaultParticipantID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var ok bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok = GetParticipantID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Participant-ID", tt.header)
			}

			ParticipantMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

			if !ok {
				t.Fatal("participant id missing from context")
			}
			if got != tt.want {
				t.Errorf("participant id = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetParticipantIDWithoutMiddleware(t *testing.T) {
	if _, ok := GetParticipantID(context.Background()); ok {
		t.Error("expected no participant id on a bare context")
	}
}
