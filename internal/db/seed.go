package db

import (
	"context"
	"fmt"

	"github.com/jonathan/drip-agent/internal/types"
)

// SeedArchetypes is the built-in archetype catalog.
var SeedArchetypes = []types.Archetype{
	{
		ID:            "techwear",
		Name:          "Techwear",
		Description:   "Functional, futuristic clothing with technical fabrics. Urban ninja aesthetic.",
		Keywords:      []string{"tech", "functional", "futuristic", "minimal", "black", "urban", "ninja", "cyberpunk"},
		ExampleBrands: []string{"Acronym", "Arc'teryx Veilance", "Stone Island Shadow Project", "Y-3"},
	},
	{
		ID:            "quiet-luxury",
		Name:          "Quiet Luxury",
		Description:   "Understated elegance. Quality over logos. The old money aesthetic.",
		Keywords:      []string{"elegant", "understated", "quality", "timeless", "neutral", "sophisticated", "refined"},
		ExampleBrands: []string{"The Row", "Loro Piana", "Brunello Cucinelli", "Zegna"},
	},
	{
		ID:            "streetwear",
		Name:          "Streetwear",
		Description:   "Bold, expressive, culture-driven. Sneakers, hoodies, statement pieces.",
		Keywords:      []string{"bold", "expressive", "hype", "sneakers", "graphic", "urban", "culture", "drops"},
		ExampleBrands: []string{"Supreme", "Off-White", "A Bathing Ape", "Stüssy"},
	},
	{
		ID:            "minimalist",
		Name:          "Minimalist",
		Description:   "Clean lines, neutral colors, capsule wardrobe mentality.",
		Keywords:      []string{"clean", "simple", "neutral", "capsule", "essential", "modern", "scandinavian"},
		ExampleBrands: []string{"COS", "Everlane", "Uniqlo U", "Arket"},
	},
	{
		ID:            "avant-garde",
		Name:          "Avant-Garde",
		Description:   "Experimental, artistic, boundary-pushing fashion as art.",
		Keywords:      []string{"experimental", "artistic", "deconstructed", "asymmetric", "dramatic", "unique"},
		ExampleBrands: []string{"Rick Owens", "Comme des Garçons", "Yohji Yamamoto", "Maison Margiela"},
	},
	{
		ID:            "classic-prep",
		Name:          "Classic Prep",
		Description:   "Timeless Ivy League style. Polo shirts, chinos, boat shoes.",
		Keywords:      []string{"preppy", "classic", "ivy", "traditional", "collegiate", "nautical", "conservative"},
		ExampleBrands: []string{"Ralph Lauren", "Brooks Brothers", "J.Crew", "Vineyard Vines"},
	},
	{
		ID:            "athleisure",
		Name:          "Athleisure",
		Description:   "Performance meets lifestyle. Gym-to-street versatility.",
		Keywords:      []string{"athletic", "comfortable", "sporty", "performance", "casual", "active"},
		ExampleBrands: []string{"Lululemon", "Nike", "Alo Yoga", "Outdoor Voices"},
	},
}

// SeedProducts is the built-in product catalog.
var SeedProducts = []types.Product{
	// Techwear
	{
		ID: "acronym-j1a", Name: "J1A-GTKP Jacket", Brand: "Acronym",
		Category: "Outerwear", Price: 1800,
		StyleArchetypes: []string{"techwear", "avant-garde"},
		Description:     "The iconic Acronym jacket. GORE-TEX Pro, modular design, urban armor.",
		ImageURL:        "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
		BuyLink:         "https://acrnm.com/",
		Gender:          "unisex", Colors: []string{"black"}, Weight: types.WeightHeavy,
	},
	{
		ID: "arcteryx-veilance-blazer", Name: "Veilance Indisce Blazer", Brand: "Arc'teryx Veilance",
		Category: "Outerwear", Price: 850,
		StyleArchetypes: []string{"techwear", "minimalist", "quiet-luxury"},
		Description:     "Technical blazer that works in the boardroom and the rain.",
		ImageURL:        "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=400",
		BuyLink:         "https://veilance.com/",
		Gender:          "male", Colors: []string{"black", "charcoal"}, Weight: types.WeightMedium,
	},
	{
		ID: "nike-acg-pants", Name: "ACG Cargo Pants", Brand: "Nike ACG",
		Category: "Bottoms", Price: 180,
		StyleArchetypes: []string{"techwear", "streetwear", "athleisure"},
		Description:     "Trail-ready cargos with urban appeal. Durable and functional.",
		ImageURL:        "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=400",
		BuyLink:         "https://nike.com/",
		Gender:          "unisex", Colors: []string{"black", "olive green"}, Weight: types.WeightLayered,
	},
	// Quiet Luxury
	{
		ID: "the-row-cashmere", Name: "Cashmere Crew Sweater", Brand: "The Row",
		Category: "Tops", Price: 1290,
		StyleArchetypes: []string{"quiet-luxury", "minimalist"},
		Description:     "Whisper-soft cashmere. No logos, just quality you can feel.",
		ImageURL:        "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400",
		BuyLink:         "https://therow.com/",
		Gender:          "unisex", Colors: []string{"camel", "ivory", "charcoal"}, Weight: types.WeightMedium,
	},
	{
		ID: "loro-piana-loafers", Name: "Summer Walk Loafers", Brand: "Loro Piana",
		Category: "Footwear", Price: 895,
		StyleArchetypes: []string{"quiet-luxury", "classic-prep"},
		Description:     "The ultimate quiet flex. IYKYK.",
		ImageURL:        "https://images.unsplash.com/photo-1614252369475-531eba835eb1?w=400",
		BuyLink:         "https://loropiana.com/",
		Gender:          "male", Colors: []string{"taupe", "navy"},
	},
	// Streetwear
	{
		ID: "supreme-box-logo", Name: "Box Logo Hoodie", Brand: "Supreme",
		Category: "Tops", Price: 168,
		StyleArchetypes: []string{"streetwear"},
		Description:     "The grail. Box logo speaks for itself.",
		ImageURL:        "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400",
		BuyLink:         "https://supremenewyork.com/",
		Gender:          "unisex", Colors: []string{"true red", "black", "heather gray"}, Weight: types.WeightMedium,
	},
	{
		ID: "jordan-1-chicago", Name: "Air Jordan 1 Retro High OG", Brand: "Nike/Jordan",
		Category: "Footwear", Price: 180,
		StyleArchetypes: []string{"streetwear", "athleisure"},
		Description:     "The most iconic sneaker ever made. Period.",
		ImageURL:        "https://images.unsplash.com/photo-1600269452121-4f2416e55c28?w=400",
		BuyLink:         "https://nike.com/",
		Gender:          "unisex", Colors: []string{"true red", "white", "black"},
	},
	{
		ID: "stussy-tee", Name: "Basic Logo Tee", Brand: "Stüssy",
		Category: "Tops", Price: 45,
		StyleArchetypes: []string{"streetwear", "minimalist"},
		Description:     "OG streetwear staple. Simple but unmistakable.",
		ImageURL:        "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=400",
		BuyLink:         "https://stussy.com/",
		Gender:          "unisex", Colors: []string{"white", "black"}, Weight: types.WeightLight,
	},
	// Minimalist
	{
		ID: "cos-wool-coat", Name: "Wool Blend Overcoat", Brand: "COS",
		Category: "Outerwear", Price: 290,
		StyleArchetypes: []string{"minimalist", "quiet-luxury"},
		Description:     "Clean lines, impeccable fit, works with everything.",
		ImageURL:        "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=400",
		BuyLink:         "https://cos.com/",
		Gender:          "female", Colors: []string{"charcoal", "camel"}, Weight: types.WeightHeavy,
	},
	{
		ID: "common-projects-achilles", Name: "Original Achilles Low", Brand: "Common Projects",
		Category: "Footwear", Price: 425,
		StyleArchetypes: []string{"minimalist", "quiet-luxury", "techwear"},
		Description:     "The perfect white sneaker. Gold numbers only.",
		ImageURL:        "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400",
		BuyLink:         "https://commonprojects.com/",
		Gender:          "unisex", Colors: []string{"white"},
	},
	{
		ID: "uniqlo-u-tee", Name: "U Crew Neck T-Shirt", Brand: "Uniqlo U",
		Category: "Tops", Price: 20,
		StyleArchetypes: []string{"minimalist", "streetwear", "techwear"},
		Description:     "Lemaire-designed basics. Best tee for the price.",
		ImageURL:        "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
		BuyLink:         "https://uniqlo.com/",
		Gender:          "unisex", Colors: []string{"white", "black", "sage green"}, Weight: types.WeightLight,
	},
	// Avant-Garde
	{
		ID: "rick-owens-ramones", Name: "Ramones High-Top", Brand: "Rick Owens",
		Category: "Footwear", Price: 1150,
		StyleArchetypes: []string{"avant-garde", "streetwear"},
		Description:     "Chunky, dark, unmistakably Rick.",
		ImageURL:        "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=400",
		BuyLink:         "https://rickowens.eu/",
		Gender:          "unisex", Colors: []string{"black"},
	},
	{
		ID: "cdg-play-tee", Name: "Play Heart Logo T-Shirt", Brand: "Comme des Garçons",
		Category: "Tops", Price: 125,
		StyleArchetypes: []string{"avant-garde", "streetwear"},
		Description:     "Entry point to CDG. The heart knows.",
		ImageURL:        "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=400",
		BuyLink:         "https://comme-des-garcons.com/",
		Gender:          "unisex", Colors: []string{"white", "black"}, Weight: types.WeightLight,
	},
	// More budget options
	{
		ID: "carhartt-wip-jacket", Name: "Michigan Chore Coat", Brand: "Carhartt WIP",
		Category: "Outerwear", Price: 215,
		StyleArchetypes: []string{"streetwear", "minimalist"},
		Description:     "Workwear heritage meets streetwear cool.",
		ImageURL:        "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=400",
		BuyLink:         "https://carhartt-wip.com/",
		Gender:          "male", Colors: []string{"chocolate brown", "black"}, Weight: types.WeightMedium,
	},
	{
		ID: "everlane-chinos", Name: "Performance Chino", Brand: "Everlane",
		Category: "Bottoms", Price: 78,
		StyleArchetypes: []string{"minimalist", "classic-prep"},
		Description:     "Stretchy, breathable, looks good everywhere.",
		ImageURL:        "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=400",
		BuyLink:         "https://everlane.com/",
		Gender:          "male", Colors: []string{"khaki", "navy"}, Weight: types.WeightLight,
	},
	{
		ID: "new-balance-990", Name: "990v6 Made in USA", Brand: "New Balance",
		Category: "Footwear", Price: 200,
		StyleArchetypes: []string{"minimalist", "quiet-luxury", "athleisure"},
		Description:     "Dad shoe that became a fashion icon. Grey is the new black.",
		ImageURL:        "https://images.unsplash.com/photo-1539185441755-769473a23570?w=400",
		BuyLink:         "https://newbalance.com/",
		Gender:          "unisex", Colors: []string{"heather gray"},
	},
}

// Seed loads the built-in archetype and product catalogs. Existing rows with
// matching ids are replaced; other rows are left alone.
func (s *Store) Seed(ctx context.Context) error {
	for i := range SeedArchetypes {
		if err := s.UpsertArchetype(ctx, &SeedArchetypes[i]); err != nil {
			return fmt.Errorf("seed archetypes: %w", err)
		}
	}
	for i := range SeedProducts {
		if err := s.UpsertProduct(ctx, &SeedProducts[i]); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}
	return nil
}
