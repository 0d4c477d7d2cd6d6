package controllers

import (
	"net/http"

	"github.com/calabarlabs/storefront-backend/api/middleware"
	"github.com/calabarlabs/storefront-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func SessionPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "session", "status": "ok"}
		if sid := middleware.SessionIDFromContext(r.Context()); sid != "" {
			payload["session_id"] = sid
		}
		responses.WriteSuccess(w, payload)
	}
}
