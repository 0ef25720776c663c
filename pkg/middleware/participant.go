package middleware

import (
	"context"
	"net/http"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ParticipantIDKey is the context key for the calling participant's id
	ParticipantIDKey ContextKey = "participant_id"

	// DefaultParticipantID identifies the app's own user. The mobile client
	// has no server-side accounts; it identifies itself per request.
	DefaultParticipantID = "you"
)

// ParticipantMiddleware resolves the calling participant from the
// X-Participant-ID header, falling back to the self sentinel. Real
// authentication lives in the mobile app's backend, not here.
func ParticipantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		participantID := r.Header.Get("X-Participant-ID")
		if participantID == "" {
			participantID = DefaultParticipantID
		}
		ctx := context.WithValue(r.Context(), ParticipantIDKey, participantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetParticipantID extracts the participant id from the request context
func GetParticipantID(ctx context.Context) (string, bool) {
	participantID, ok := ctx.Value(ParticipantIDKey).(string)
	return participantID, ok
}
