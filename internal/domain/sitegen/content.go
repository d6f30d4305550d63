package sitegen

// ThemeFor returns the palette for a template, falling back to the business palette.
func ThemeFor(id TemplateID) Theme {
	switch id {
	case TemplatePortfolio:
		return Theme{Primary: "#7c3aed", Secondary: "#a855f7", Accent: "#f59e0b", Background: "#faf5ff"}
	case TemplateBlog:
		return Theme{Primary: "#059669", Secondary: "#10b981", Accent: "#f59e0b", Background: "#f0fdf4"}
	case TemplateLanding:
		return Theme{Primary: "#dc2626", Secondary: "#ef4444", Accent: "#f59e0b", Background: "#fef2f2"}
	case TemplateEcommerce:
		return Theme{Primary: "#be185d", Secondary: "#ec4899", Accent: "#8b5cf6", Background: "#fdf2f8"}
	case TemplatePhotography:
		return Theme{Primary: "#0f766e", Secondary: "#14b8a6", Accent: "#f59e0b", Background: "#f0fdfa"}
	default:
		return Theme{Primary: "#1e40af", Secondary: "#3b82f6", Accent: "#10b981", Background: "#f8fafc"}
	}
}

// HeroFor returns the hero copy for a business type, falling back to the default copy.
func HeroFor(tag BusinessType) Hero {
	switch tag {
	case BusinessRestaurant:
		return Hero{
			Title:    "Exceptional Dining Experience",
			Subtitle: "Discover our carefully crafted menu featuring fresh, locally-sourced ingredients prepared by world-class chefs.",
			CTA:      "Make a Reservation",
		}
	case BusinessPortfolio:
		return Hero{
			Title:    "Creative Excellence",
			Subtitle: "Bringing your vision to life through innovative design and compelling storytelling.",
			CTA:      "View My Work",
		}
	case BusinessTech:
		return Hero{
			Title:    "Innovation That Matters",
			Subtitle: "Transform your business with cutting-edge technology solutions designed for the modern world.",
			CTA:      "Get Started",
		}
	case BusinessBlog:
		return Hero{
			Title:    "Stories Worth Sharing",
			Subtitle: "Explore insights, adventures, and discoveries from around the world.",
			CTA:      "Read Latest Posts",
		}
	default:
		return Hero{
			Title:    "Welcome to Excellence",
			Subtitle: "Discover what makes us different and why thousands of customers trust us.",
			CTA:      "Learn More",
		}
	}
}

// FeaturesFor returns the three feature cards for a business type. Sets are never mixed;
// unknown tags get the default set. The slice is freshly allocated on every call.
func FeaturesFor(tag BusinessType) []Feature {
	switch tag {
	case BusinessRestaurant:
		return []Feature{
			{Title: "Online Menu", Description: "Browse our delicious menu items with prices and descriptions"},
			{Title: "Table Reservations", Description: "Book your table online for a seamless dining experience"},
			{Title: "Location & Hours", Description: "Find us easily with our location details and opening hours"},
		}
	case BusinessPortfolio:
		return []Feature{
			{Title: "Project Gallery", Description: "Showcase your best work with beautiful image galleries"},
			{Title: "About Me", Description: "Share your story, skills, and professional background"},
			{Title: "Contact Form", Description: "Make it easy for clients to reach out and hire you"},
		}
	case BusinessTech:
		return []Feature{
			{Title: "Product Features", Description: "Highlight what makes your product unique and valuable"},
			{Title: "Pricing Plans", Description: "Clear pricing tiers to help customers choose the right plan"},
			{Title: "Customer Support", Description: "24/7 support to help your users succeed"},
		}
	case BusinessBlog:
		return []Feature{
			{Title: "Latest Posts", Description: "Stay updated with our newest articles and insights"},
			{Title: "Categories", Description: "Organize content by topics for easy navigation"},
			{Title: "Search & Filter", Description: "Find exactly what you're looking for quickly"},
		}
	default:
		return []Feature{
			{Title: "Professional Design", Description: "Clean, modern layout that looks great on all devices"},
			{Title: "Fast Loading", Description: "Optimized for speed and performance"},
			{Title: "SEO Ready", Description: "Built with search engine optimization in mind"},
		}
	}
}

// Resolve assembles WebsiteData from independent theme, hero and feature lookups.
// There is no cross validation between template and tag, and no failure path.
func Resolve(tag BusinessType, template TemplateID, title, description string) WebsiteData {
	if title == "" {
		title = FallbackTitle
	}
	return WebsiteData{
		Title:       title,
		Description: description,
		Template:    template,
		Theme:       ThemeFor(template),
		Sections: Sections{
			Hero:     HeroFor(tag),
			Features: FeaturesFor(tag),
		},
	}
}

// Generate is the pure pipeline: classify, name, resolve. The prompt doubles as the description.
func Generate(prompt string, template TemplateID) WebsiteData {
	return Resolve(Classify(prompt), template, ExtractTitle(prompt), prompt)
}

func templateInfo(id TemplateID) TemplateInfo {
	info := TemplateInfo{ID: id, Theme: ThemeFor(id)}
	switch id {
	case TemplatePortfolio:
		info.Name, info.Description = "Portfolio", "Creative showcases and personal sites"
	case TemplateBlog:
		info.Name, info.Description = "Blog", "Content-focused websites"
	case TemplateLanding:
		info.Name, info.Description = "Landing Page", "High-converting single pages"
	case TemplateEcommerce:
		info.Name, info.Description = "E-commerce", "Online stores and marketplaces"
	case TemplatePhotography:
		info.Name, info.Description = "Photography", "Visual galleries and portfolios"
	default:
		info.Name, info.Description = "Business", "Professional corporate websites"
	}
	return info
}

var examplePrompts = []string{
	"Create a modern restaurant website with menu and reservations",
	"Build a portfolio site for a graphic designer",
	"Generate a tech startup landing page with pricing",
	"Make a blog website for travel photography",
}

// BuildCatalog returns the template catalog and example prompts.
func BuildCatalog() Catalog {
	templates := make([]TemplateInfo, 0, len(Templates))
	for _, id := range Templates {
		templates = append(templates, templateInfo(id))
	}
	examples := make([]string, len(examplePrompts))
	copy(examples, examplePrompts)
	return Catalog{Templates: templates, Examples: examples}
}
