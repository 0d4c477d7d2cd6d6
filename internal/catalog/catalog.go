package catalog

// Product is one sellable catalog entry. Prices are minor-unit-free naira
// amounts. Products are immutable, sourced from the static catalog.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Image      string `json:"image"`
	HoverImage string `json:"hoverImage"`
	Category   string `json:"category"`
}

// Bundle is a hot-deal offer. Claiming a bundle puts it in the cart as a
// single product line under the "Bundle Offer" category.
type Bundle struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice"`
	Description   string `json:"description"`
	Image         string `json:"image"`
}

// SocialPost is a social-proof gallery entry.
type SocialPost struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

// AsProduct converts a bundle into the single-product form used by the cart.
func (b Bundle) AsProduct() Product {
	return Product{
		ID:         b.ID,
		Name:       b.Title,
		Price:      b.Price,
		Image:      b.Image,
		HoverImage: b.Image,
		Category:   "Bundle Offer",
	}
}
