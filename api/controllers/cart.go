package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/calabarlabs/storefront-backend/api/middleware"
	"github.com/calabarlabs/storefront-backend/api/responses"
	"github.com/calabarlabs/storefront-backend/api/validators"
	cartsvc "github.com/calabarlabs/storefront-backend/internal/cart"
	catalogsvc "github.com/calabarlabs/storefront-backend/internal/catalog"
	pkgerrors "github.com/calabarlabs/storefront-backend/pkg/errors"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
	"github.com/calabarlabs/storefront-backend/pkg/money"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type cartResponse struct {
	Items           cartsvc.Lines `json:"items"`
	Count           int           `json:"count"`
	Subtotal        int64         `json:"subtotal"`
	SubtotalDisplay string        `json:"subtotalDisplay"`
}

func newCartResponse(lines cartsvc.Lines) cartResponse {
	return cartResponse{
		Items:           lines,
		Count:           lines.Count(),
		Subtotal:        lines.Subtotal(),
		SubtotalDisplay: money.Format(lines.Subtotal()),
	}
}

func sessionIDOrError(r *http.Request) (string, error) {
	sid := middleware.SessionIDFromContext(r.Context())
	if sid == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return sid, nil
}

// CartFetch returns the session's cart.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lines, err := svc.Get(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(lines))
	}
}

// CartAdd adds one unit of a catalog product, incrementing an existing line.
func CartAdd(svc cartsvc.Service, catalog catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalog.FindProduct(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := svc.Add(r.Context(), sid, product)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(lines))
	}
}

// CartRemove deletes a line entirely.
func CartRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lines, err := svc.Remove(r.Context(), sid, chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(lines))
	}
}

// CartUpdateQuantity nudges a line's quantity by a signed delta, floored at
// one.
func CartUpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := svc.UpdateQuantity(r.Context(), sid, chi.URLParam(r, "productId"), payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(lines))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lines, err := svc.Clear(r.Context(), sid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(lines))
	}
}
