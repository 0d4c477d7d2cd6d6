package controllers

import (
	"net/http"

	"github.com/calabarlabs/storefront-backend/api/middleware"
	"github.com/calabarlabs/storefront-backend/api/responses"
	sessionsvc "github.com/calabarlabs/storefront-backend/internal/session"
	pkgerrors "github.com/calabarlabs/storefront-backend/pkg/errors"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
)

// SessionStart mints a guest session explicitly. Clients that rely on the
// session middleware's implicit minting never need to call it.
func SessionStart(mgr *sessionsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, sessionID, err := mgr.Issue()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issuing session"))
			return
		}
		w.Header().Set(middleware.SessionHeader, token)
		responses.WriteSuccess(w, map[string]string{
			"sessionId": sessionID,
			"token":     token,
		})
	}
}
