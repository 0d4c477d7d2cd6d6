package catalog

import (
	pkgerrors "github.com/calabarlabs/storefront-backend/pkg/errors"
)

// Service exposes read-only catalog lookups. The catalog is static data; the
// service never mutates it.
type Service interface {
	SignatureProducts() []Product
	AllProducts() []Product
	HotDeals() []Bundle
	SocialPosts() []SocialPost
	FindProduct(id string) (Product, error)
}

type service struct {
	products []Product
	deals    []Bundle
	posts    []SocialPost
}

// NewService builds the catalog service over the static product data.
func NewService() Service {
	all := make([]Product, 0, len(signatureProducts)+len(extendedProducts))
	all = append(all, signatureProducts...)
	all = append(all, extendedProducts...)
	return &service{
		products: all,
		deals:    hotDeals,
		posts:    socialPosts,
	}
}

func (s *service) SignatureProducts() []Product {
	return cloneProducts(s.products[:len(signatureProducts)])
}

func (s *service) AllProducts() []Product {
	return cloneProducts(s.products)
}

func (s *service) HotDeals() []Bundle {
	out := make([]Bundle, len(s.deals))
	copy(out, s.deals)
	return out
}

func (s *service) SocialPosts() []SocialPost {
	out := make([]SocialPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// FindProduct resolves a product or hot-deal bundle by ID. Bundles resolve to
// their single-product cart form.
func (s *service) FindProduct(id string) (Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	for _, b := range s.deals {
		if b.ID == id {
			return b.AsProduct(), nil
		}
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func cloneProducts(src []Product) []Product {
	out := make([]Product, len(src))
	copy(out, src)
	return out
}
