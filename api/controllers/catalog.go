package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/calabarlabs/storefront-backend/api/responses"
	catalogsvc "github.com/calabarlabs/storefront-backend/internal/catalog"
	pkgerrors "github.com/calabarlabs/storefront-backend/pkg/errors"
	"github.com/calabarlabs/storefront-backend/pkg/logger"
	"github.com/calabarlabs/storefront-backend/pkg/money"
)

type productResponse struct {
	catalogsvc.Product
	PriceDisplay string `json:"priceDisplay"`
}

func newProductResponse(p catalogsvc.Product) productResponse {
	return productResponse{Product: p, PriceDisplay: money.Format(p.Price)}
}

func newProductResponses(products []catalogsvc.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}

// CatalogSignature lists the signature collection.
func CatalogSignature(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, newProductResponses(svc.SignatureProducts()))
	}
}

// CatalogProducts lists every sellable product, bundles included.
func CatalogProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, newProductResponses(svc.AllProducts()))
	}
}

// CatalogProduct fetches one product or bundle by ID.
func CatalogProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		product, err := svc.FindProduct(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newProductResponse(product))
	}
}

// CatalogHotDeals lists the bundle offers.
func CatalogHotDeals(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.HotDeals())
	}
}

// CatalogSocial lists the social feed tiles.
func CatalogSocial(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.SocialPosts())
	}
}
