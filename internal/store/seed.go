package store

import (
	"backend/internal/models"
	"backend/internal/slug"
)

func sampleProduct(id int, name, category, description, price string, discounted *string, image string, featured bool) models.Product {
	return models.Product{
		ID:              id,
		Slug:            slug.Make(name),
		Name:            name,
		Category:        category,
		Description:     description,
		Price:           price,
		DiscountedPrice: discounted,
		Images:          models.ImageList{image},
		Image:           image,
		Featured:        featured,
	}
}

func strPtr(s string) *string { return &s }

func seedProducts() []models.Product {
	return []models.Product{
		sampleProduct(1, "Royal Palm", "Palm Trees",
			"Majestic royal palm tree, perfect for creating tropical ambiance in your garden",
			"€150", nil, "/images/royal-palm.jpg", true),
		sampleProduct(2, "Christmas Pine", "Christmas Trees",
			"Fresh Norwegian pine, ideal for Christmas decorations with wonderful aroma",
			"€45", strPtr("€35"), "/images/christmas-pine.jpg", true),
		sampleProduct(3, "Decorative Olive", "Ornamental Trees",
			"Authentic Mediterranean olive tree for elegant garden decoration",
			"€120", nil, "/images/olive-tree.jpg", true),
		sampleProduct(4, "Japanese Maple", "Ornamental Trees",
			"Beautiful red Japanese maple providing stunning autumn colors",
			"€100", strPtr("€85"), "/images/japanese-maple.jpg", false),
		sampleProduct(5, "Phoenix Palm", "Palm Trees",
			"Hardy Phoenix palm perfect for outdoor landscaping",
			"€95", nil, "/images/phoenix-palm.jpg", false),
	}
}

func seedAdmin() models.AdminCredentials {
	return models.AdminCredentials{
		Username: "admin",
		Password: "pepiniera2024",
	}
}

func seoPage(title, description, keywords string) map[string]any {
	return map[string]any{
		"title":       title,
		"description": description,
		"keywords":    keywords,
	}
}

func seedSettings() map[string]any {
	return map[string]any{
		"featuredCount": 3,
		"homeContent": map[string]any{
			"heroTitle":     "Pepiniera Grădinari",
			"heroSubtitle":  "Arbori decorativi de calitate pentru grădina dumneavoastră",
			"featuredTitle": "Arbori Recomandați",
		},
		"aboutContent": map[string]any{
			"title": "Despre Afacerea Noastră de Familie",
			"paragraphs": []string{
				"Bine ați venit la pepiniera noastră de familie, unde cultivăm și oferim arbori decorativi de calitate de peste trei generații. Pasiunea noastră pentru horticultură și dedicarea pentru calitate ne-au făcut un nume de încredere în decorarea grădinilor.",
				"Ne specializăm într-o gamă variată de arbori, incluzând palmieri eleganți, brazi tradiționali de Crăciun, pomi fructiferi ornamentali și specii decorative exotice. Fiecare arbore este selectat cu grijă și îngrijit pentru a aduce frumusețe și bucurie în spațiul dumneavoastră.",
				"Ne mândrim cu serviciul personalizat și sfaturile de expert. Indiferent dacă amenajați o grădină nouă sau căutați bradul perfect de Crăciun, suntem aici să vă ajutăm să găsiți exact ceea ce aveți nevoie.",
			},
			"expertiseTitle": "De ce noi?",
			"expertise": []string{
				"🌴 Palmieri - Eleganță tropicală pentru orice grădină",
				"🎄 Brazi de Crăciun - Brazi proaspeți și aromați",
				"🌳 Arbori Ornamentali - Frumusețe pentru grădină tot anul",
				"🌿 Specii Exotice - Arbori unici pentru proiecte speciale",
			},
			"image": "",
		},
		"contactInfo": map[string]any{
			"phone":    "+40 123 456 789",
			"email":    "info@pepiniera.ro",
			"address":  "Str. Gradinarilor nr. 15\nCluj-Napoca, Romania",
			"hours":    "Monday - Friday: 8:00 - 18:00\nSaturday: 9:00 - 16:00\nSunday: Closed",
			"whatsapp": "+40123456789",
		},
		"socialLinks": map[string]any{
			"facebook":  "",
			"instagram": "",
			"tiktok":    "",
		},
		"seoSettings": map[string]any{
			"home": seoPage(
				"Pepiniera Grădinari - Arbori Decorativi",
				"Palmieri, brazi de Crăciun și arbori ornamentali de calitate",
				"pepiniera, arbori decorativi, palmieri, brazi"),
			"products": seoPage(
				"Produse - Pepiniera Grădinari",
				"Catalogul complet de arbori decorativi și plante ornamentale",
				"arbori, plante ornamentale, catalog"),
			"about": seoPage(
				"Despre Noi - Pepiniera Grădinari",
				"Afacere de familie cu tradiție de trei generații în horticultură",
				"pepiniera, familie, horticultura"),
			"contact": seoPage(
				"Contact - Pepiniera Grădinari",
				"Contactați-ne pentru sfaturi de expert și comenzi",
				"contact, pepiniera, comenzi"),
		},
	}
}
