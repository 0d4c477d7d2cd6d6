package catalog

var signatureProducts = []Product{
	{
		ID:         "1",
		Name:       "ONYX STEALTH SNAPBACK",
		Price:      45000,
		Image:      "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?q=80&w=800&auto=format&fit=crop",
		HoverImage: "https://images.unsplash.com/photo-1556306535-0f09a537f0a3?q=80&w=800&auto=format&fit=crop",
		Category:   "Signature",
	},
	{
		ID:         "2",
		Name:       "URBAN NOMAD TRUCKER",
		Price:      35000,
		Image:      "https://images.unsplash.com/photo-1534215754734-18e55d13e346?q=80&w=800&auto=format&fit=crop",
		HoverImage: "https://images.unsplash.com/photo-1575435462410-6c7031910629?q=80&w=800&auto=format&fit=crop",
		Category:   "Limited",
	},
	{
		ID:         "3",
		Name:       "CHARCOAL MERINO WOOL",
		Price:      55000,
		Image:      "https://images.unsplash.com/photo-1521335629791-ce4aec67dd15?q=80&w=800&auto=format&fit=crop",
		HoverImage: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?q=80&w=800&auto=format&fit=crop",
		Category:   "Premium",
	},
}

var extendedProducts = []Product{
	{
		ID:         "4",
		Name:       "MIDNIGHT BEANIE",
		Price:      25000,
		Image:      "https://images.unsplash.com/photo-1576871333020-04099436113b?q=80&w=800&auto=format&fit=crop",
		HoverImage: "https://images.unsplash.com/photo-1629135338245-c33190860528?q=80&w=800&auto=format&fit=crop",
		Category:   "Fall/Winter",
	},
	{
		ID:         "5",
		Name:       "STREET BUCKET CAP",
		Price:      38000,
		Image:      "https://images.unsplash.com/photo-1490367532201-b9bc1dc483f6?q=80&w=800&auto=format&fit=crop",
		HoverImage: "https://images.unsplash.com/photo-1490130282470-3d7759a2243d?q=80&w=800&auto=format&fit=crop",
		Category:   "Summer",
	},
	{
		ID:         "6",
		Name:       "VINTAGE CORDUROY",
		Price:      42000,
		Image:      "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?q=80&w=800&auto=format&fit=crop",
		HoverImage: "https://images.unsplash.com/photo-1556306535-0f09a537f0a3?q=80&w=800&auto=format&fit=crop",
		Category:   "Classic",
	},
}

var hotDeals = []Bundle{
	{
		ID:            "b1",
		Title:         "THE STARTER PACK",
		Price:         95000,
		OriginalPrice: 125000,
		Description:   "3 Premium Caps of your choice + Signature Case.",
		Image:         "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?q=80&w=1000&auto=format&fit=crop",
	},
	{
		ID:            "b2",
		Title:         "CORE COLLECTION SET",
		Price:         65000,
		OriginalPrice: 80000,
		Description:   "The Stealth and The Nomad in a custom dual pack.",
		Image:         "https://images.unsplash.com/photo-1572451479139-6a308211d8be?q=80&w=1000&auto=format&fit=crop",
	},
}

var socialPosts = []SocialPost{
	{ID: "s1", Username: "@marcus_urban", Image: "https://images.unsplash.com/photo-1523395243481-163f8f27df54?q=80&w=600&auto=format&fit=crop"},
	{ID: "s2", Username: "@lea.fits", Image: "https://images.unsplash.com/photo-1542332213-31f87348057f?q=80&w=600&auto=format&fit=crop"},
	{ID: "s3", Username: "@dre_styles", Image: "https://images.unsplash.com/photo-1549060279-7e168fcee0c2?q=80&w=600&auto=format&fit=crop"},
	{ID: "s4", Username: "@street_shutter", Image: "https://images.unsplash.com/photo-1514332930284-8e753cd129ef?q=80&w=600&auto=format&fit=crop"},
	{ID: "s5", Username: "@calabar_fan", Image: "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?q=80&w=600&auto=format&fit=crop"},
	{ID: "s6", Username: "@vibe_check", Image: "https://images.unsplash.com/photo-1534215754734-18e55d13e346?q=80&w=600&auto=format&fit=crop"},
}
