package middleware

import (
	"context"
	"net/http"

	"github.com/calabarlabs/storefront-backend/api/responses"
	"github.com/calabarlabs/storefront-backend/internal/session"
	pkgerrors "github.com/calabarlabs/storefront-backend/pkg/errors"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
)

// SessionHeader carries the guest session token both ways: clients echo it
// back on every request and receive a fresh one when theirs is missing or
// no longer verifies.
const SessionHeader = "X-Calabar-Session"

type sessionIDKey struct{}

// Session resolves the request's guest session, minting a new one when
// needed. Handlers downstream always see a session ID in context.
func Session(mgr *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sessionID, err := mgr.Verify(r.Header.Get(SessionHeader))
			if err != nil {
				token, freshID, issueErr := mgr.Issue()
				if issueErr != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, issueErr, "issuing session"))
					return
				}
				sessionID = freshID
				w.Header().Set(SessionHeader, token)
			}

			ctx = context.WithValue(ctx, sessionIDKey{}, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the resolved session ID, or "" outside the
// session middleware.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}
