package bootstrap

import (
	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/seo"
	"gorm.io/datatypes"
)

// SiteSeed describes the default site.
type SiteSeed struct {
	Hostname string
	Port     int
	Name     string
}

// BrandSeed is a brand with an optional partner referenced by name.
type BrandSeed struct {
	Brand       db.Brand
	PartnerName string
}

// ProductSeed is a product whose brand and category are referenced by name.
type ProductSeed struct {
	Product      db.Product
	BrandName    string
	CategoryName string
}

// SEOSeed holds the values written over the global SEO settings on every run.
type SEOSeed struct {
	SiteName               string
	CompanyName            string
	CompanyDescription     string
	DefaultMetaDescription string
	Phone                  string
	Email                  string
	Address                string
}

// Seed is the fixed content a run brings the store to.
type Seed struct {
	Site       SiteSeed
	Home       content.Definition
	Pages      []content.Definition
	Categories []db.ProductCategory
	Partners   []db.Partner
	Brands     []BrandSeed
	Team       []db.TeamMember
	Products   []ProductSeed
	SEO        SEOSeed
}

const (
	companyPhone   = "+92-315-7680420"
	companyEmail   = "azan@sweetbliss.pk"
	companyAddress = "Lahore, Punjab, Pakistan"
)

func pageSEO(title, search, meta, keywords, schema string) seo.Fields {
	f := seo.DefaultFields()
	f.SEOTitle = title
	f.SearchDescription = search
	f.MetaDescription = meta
	f.MetaKeywords = keywords
	f.SchemaType = schema
	return f
}

func sections(pairs ...string) content.Body {
	var body content.Body
	for i := 0; i+1 < len(pairs); i += 2 {
		body.SetSection(content.Section{Key: pairs[i], HTML: pairs[i+1]})
	}
	return body
}

// DefaultSeed returns the Sweet Bliss launch content.
func DefaultSeed() Seed {
	return Seed{
		Site: SiteSeed{Hostname: "localhost", Port: 8000, Name: "Sweet Bliss"},
		Home: homeDefinition(),
		Pages: []content.Definition{
			aboutDefinition(),
			productsDefinition(),
			teamDefinition(),
			contactDefinition(),
			servicesDefinition(),
			portfolioDefinition(),
			partnershipsDefinition(),
		},
		Categories: []db.ProductCategory{
			{Name: "Chocolates & Confectionery", Description: "Premium chocolate bars, candies, and sweet treats", Icon: "🍫"},
			{Name: "Snacks & Crisps", Description: "Quality snack foods and crispy treats", Icon: "🍟"},
			{Name: "Beverages & Drinks", Description: "Refreshing drinks and beverage products", Icon: "🥤"},
			{Name: "Coffee & Hot Beverages", Description: "Premium coffee and hot drink products", Icon: "☕"},
			{Name: "Gum & Chewing Products", Description: "Chewing gum and related products", Icon: "🍬"},
		},
		Partners: []db.Partner{
			{Name: "Kellogg Company", Description: "Global snack manufacturer", CountryOfOrigin: "United States"},
			{Name: "JDE Peet's", Description: "Coffee and tea company", CountryOfOrigin: "Netherlands"},
			{Name: "Aujan Industries", Description: "Juice and malt beverage producer", CountryOfOrigin: "UAE"},
			{Name: "Nestlé S.A.", Description: "Food and beverage manufacturer", CountryOfOrigin: "Switzerland"},
		},
		Brands: []BrandSeed{
			{Brand: db.Brand{Name: "Pringles", Description: "Premium stackable potato crisps", CountryOfOrigin: "United States"}, PartnerName: "Kellogg Company"},
			{Brand: db.Brand{Name: "Jacobs Coffee", Description: "Rich, aromatic coffee blends", CountryOfOrigin: "Germany"}, PartnerName: "JDE Peet's"},
			{Brand: db.Brand{Name: "Rani", Description: "Refreshing fruit juices and beverages", CountryOfOrigin: "UAE"}, PartnerName: "Aujan Industries"},
			{Brand: db.Brand{Name: "Barbican", Description: "Premium non-alcoholic malt beverages", CountryOfOrigin: "UAE"}, PartnerName: "Aujan Industries"},
			{Brand: db.Brand{Name: "KitKat", Description: "Iconic chocolate wafer bars", CountryOfOrigin: "United Kingdom"}, PartnerName: "Nestlé S.A."},
			{Brand: db.Brand{Name: "Nestlé", Description: "Wide range of confectionery products", CountryOfOrigin: "Switzerland"}, PartnerName: "Nestlé S.A."},
		},
		Team: []db.TeamMember{
			{
				Name:      "Sheraz Gulzar",
				Position:  "Chief Executive Officer (CEO)",
				Bio:       "Provides overall vision, strategic leadership, and direction to position Sweet Bliss as a trusted name in global confectionery and FMCG imports. Leading the company towards sustainable growth and market expansion.",
				SortOrder: 1,
				IsActive:  true,
			},
			{
				Name:      "Azan Anwar",
				Position:  "Chief Operating Officer (COO)",
				Bio:       "Responsible for operational efficiency, logistics, and supply chain management to ensure seamless distribution across markets. Focuses on process optimization and customer satisfaction.",
				Email:     companyEmail,
				SortOrder: 2,
				IsActive:  true,
			},
			{
				Name:      "Mowahid Hassan",
				Position:  "Chief Operating Officer (COO)",
				Bio:       "Focuses on operational strategy, process improvement, and maintaining the highest standards of reliability and customer satisfaction. Ensures quality control and service excellence.",
				SortOrder: 3,
				IsActive:  true,
			},
		},
		Products: []ProductSeed{
			featured("Pringles Original", "pringles-original", "The original stackable potato crisps with a light, salty taste.", "Pringles", "Snacks & Crisps", datatypes.JSONMap{"weight": "165g", "packaging": "Can"}),
			featured("Pringles Sour Cream & Onion", "pringles-sour-cream-onion", "Stackable crisps with tangy sour cream and onion seasoning.", "Pringles", "Snacks & Crisps", datatypes.JSONMap{"weight": "165g", "packaging": "Can"}),
			featured("Jacobs Gold Instant Coffee", "jacobs-gold-instant", "Freeze-dried instant coffee with a smooth, full aroma.", "Jacobs Coffee", "Coffee & Hot Beverages", datatypes.JSONMap{"weight": "100g", "packaging": "Glass jar"}),
			featured("Rani Float Orange", "rani-float-orange", "Orange juice drink with real fruit pieces.", "Rani", "Beverages & Drinks", datatypes.JSONMap{"volume": "240ml", "packaging": "Can"}),
			featured("Barbican Apple", "barbican-apple", "Non-alcoholic malt beverage with apple flavour.", "Barbican", "Beverages & Drinks", datatypes.JSONMap{"volume": "330ml", "packaging": "Bottle"}),
			featured("KitKat 4 Finger", "kitkat-4-finger", "Crisp wafer fingers covered in milk chocolate.", "KitKat", "Chocolates & Confectionery", datatypes.JSONMap{"weight": "41.5g"}),
			featured("Nestlé Milkybar", "nestle-milkybar", "Creamy white chocolate bar.", "Nestlé", "Chocolates & Confectionery", datatypes.JSONMap{"weight": "25g"}),
		},
		SEO: SEOSeed{
			SiteName:               "Sweet Bliss",
			CompanyName:            "Sweet Bliss",
			CompanyDescription:     "Premium FMCG Importer and Distributor - Connecting global brands with local markets across Pakistan",
			DefaultMetaDescription: "Sweet Bliss - Premium FMCG Distribution | Bringing Global Brands to Pakistan",
			Phone:                  companyPhone,
			Email:                  companyEmail,
			Address:                companyAddress,
		},
	}
}

func featured(name, slug, description, brand, category string, specs datatypes.JSONMap) ProductSeed {
	return ProductSeed{
		Product: db.Product{
			Name:           name,
			Slug:           slug,
			Description:    description,
			Specifications: specs,
			IsFeatured:     true,
			IsActive:       true,
		},
		BrandName:    brand,
		CategoryName: category,
	}
}

func homeDefinition() content.Definition {
	var body content.Body
	body.SetField("hero_title", "Sweet Bliss")
	body.SetField("hero_subtitle", "Bringing Sweet Moments Closer to You")
	body.SetField("hero_description", "At Sweet Bliss, we carefully source the finest confectionery brands from around the world, delivering premium FMCG products that create joy, flavor, and unforgettable experiences for customers across Pakistan.")
	return content.Definition{
		Type:        content.TypeHome,
		Title:       "Sweet Bliss - Premium FMCG Distribution",
		Slug:        "home",
		ShowInMenus: true,
		SEO: pageSEO(
			"Sweet Bliss - Premium FMCG Distribution | Global Brands Pakistan",
			"Premium FMCG Importer and Distributor in Pakistan. We bring global confectionery and beverage brands to local markets with quality assurance and reliable distribution.",
			"Sweet Bliss - Premium FMCG Distribution | Bringing Global Brands to Pakistan",
			"Sweet Bliss, FMCG, confectionery, distribution, Pakistan, global brands, Pringles, KitKat, Nestlé",
			seo.SchemaWebsite,
		),
		Body: body,
	}
}

func aboutDefinition() content.Definition {
	body := sections(
		"introduction", `<p>At Sweet Bliss, we are a leading <strong>FMCG Importer and Distributor</strong> specializing in premium confectionery and beverage products.</p>`,
		"mission", `<p>At Sweet Bliss, our mission is to connect retailers and distributors with the world's most trusted confectionery and beverage brands. We believe in delivering not only high-quality products but also consistent value that strengthens our partners' businesses and delights end consumers.</p>`,
		"vision", `<p>We aim to become a leading name in global confectionery and beverage imports, recognized for our reliability, product variety, and ability to anticipate evolving market trends. By bridging global brands with local markets, we help our partners stay competitive and grow.</p>`,
		"values", `<p>At Sweet Bliss, we specialize in importing and distributing premium FMCG and confectionery products. Our diverse portfolio includes chocolates, candies, gums, snacks, coffee, and beverages, carefully selected to meet the needs of supermarkets, retailers, and wholesalers across Pakistan.</p>`,
	)
	body.SetField("mission_title", "Our Mission")
	body.SetField("vision_title", "Our Vision")
	body.SetField("values_title", "What We Do")
	return content.Definition{
		Type:        content.TypeAbout,
		Title:       "About Sweet Bliss",
		Slug:        "about",
		ShowInMenus: true,
		SEO: pageSEO(
			"About Sweet Bliss - FMCG Importer & Distributor Pakistan",
			"Learn about Sweet Bliss, a leading FMCG importer and distributor in Pakistan specializing in premium confectionery and beverage brands.",
			"About Sweet Bliss - FMCG Importer and Distributor connecting global brands with local markets across Pakistan",
			"",
			seo.SchemaAboutPage,
		),
		Body: body,
	}
}

func productsDefinition() content.Definition {
	return content.Definition{
		Type:        content.TypeProducts,
		Title:       "Products",
		Slug:        "products",
		ShowInMenus: true,
		SEO: pageSEO(
			"Premium FMCG Products | Sweet Bliss Distribution Portfolio",
			"Explore our premium FMCG product portfolio including global confectionery and beverage brands distributed across Pakistan.",
			"Premium FMCG Products - Chocolates, Snacks, Beverages, Coffee from global brands distributed by Sweet Bliss",
			"",
			seo.SchemaWebPage,
		),
		Body: sections("introduction", `<p>Discover our comprehensive portfolio of premium FMCG products from globally recognized brands.</p>`),
	}
}

func teamDefinition() content.Definition {
	return content.Definition{
		Type:        content.TypeTeam,
		Title:       "Our Team",
		Slug:        "team",
		ShowInMenus: true,
		SEO: pageSEO(
			"Leadership Team | Sweet Bliss Management Pakistan",
			"Meet the experienced leadership team behind Sweet Bliss, providing strategic direction for FMCG distribution across Pakistan.",
			"Meet the Sweet Bliss leadership team - experienced professionals in FMCG distribution and global brand management",
			"",
			seo.SchemaWebPage,
		),
		Body: sections("introduction", `<p>Meet our experienced leadership team providing strategic direction and operational excellence in FMCG distribution.</p>`),
	}
}

func contactDefinition() content.Definition {
	body := sections("introduction", `<p>Ready to partner with Sweet Bliss? Let's build a successful business relationship together.</p>`)
	body.SetField("phone", companyPhone)
	body.SetField("email", companyEmail)
	body.SetField("address", companyAddress)
	return content.Definition{
		Type:        content.TypeContact,
		Title:       "Contact Us",
		Slug:        "contact",
		ShowInMenus: true,
		SEO: pageSEO(
			"Contact Sweet Bliss - FMCG Distribution Partnership Pakistan",
			"Contact Sweet Bliss for wholesale inquiries, product information, and partnership opportunities in Pakistan FMCG distribution.",
			"Contact Sweet Bliss for FMCG wholesale partnerships - Phone: +92-315-7680420 | Email: azan@sweetbliss.pk | Lahore, Pakistan",
			"",
			seo.SchemaContactPage,
		),
		Body: body,
	}
}

func servicesDefinition() content.Definition {
	return content.Definition{
		Type:        content.TypeServices,
		Title:       "Our Services",
		Slug:        "services",
		ShowInMenus: true,
		SEO: pageSEO(
			"FMCG Distribution Services | Sweet Bliss Pakistan",
			"Comprehensive FMCG distribution services including importing, wholesale distribution, and partnership opportunities across Pakistan.",
			"Professional FMCG Services - Importing, Distribution, Partnership | Sweet Bliss Pakistan",
			"FMCG services, importing services, distribution services, wholesale partnerships, Pakistan",
			seo.SchemaWebPage,
		),
		Body: sections(
			"introduction", `<p>Sweet Bliss provides comprehensive FMCG distribution services designed to connect global brands with local markets across Pakistan.</p>`,
			"importing_services", `<h3>Premium Import Services</h3><p>We specialize in importing high-quality confectionery and beverage products from trusted global manufacturers, ensuring authenticity and freshness.</p><ul><li>Direct relationships with international suppliers</li><li>Quality assurance and compliance</li><li>Efficient customs clearance</li><li>Temperature-controlled storage</li></ul>`,
			"distribution_services", `<h3>Reliable Distribution Network</h3><p>Our distribution network ensures your products reach retailers, supermarkets, and wholesalers efficiently across Pakistan.</p><ul><li>Strategic warehouse locations</li><li>Cold chain management</li><li>Last-mile delivery solutions</li><li>Inventory management systems</li></ul>`,
			"partnership_services", `<h3>Strategic Business Partnerships</h3><p>We build lasting partnerships with retailers and distributors, providing ongoing support and value-added services.</p><ul><li>Business development support</li><li>Marketing and promotional assistance</li><li>Training and product knowledge</li><li>Flexible payment terms</li></ul>`,
		),
	}
}

func portfolioDefinition() content.Definition {
	return content.Definition{
		Type:        content.TypePortfolio,
		Title:       "Product Portfolio",
		Slug:        "portfolio",
		ShowInMenus: true,
		SEO: pageSEO(
			"Premium FMCG Product Portfolio | Sweet Bliss Global Brands",
			"Explore our comprehensive portfolio of premium FMCG products featuring global confectionery and beverage brands distributed across Pakistan.",
			"Premium Product Portfolio - Global Confectionery & Beverage Brands | Sweet Bliss",
			"product portfolio, global brands, confectionery products, beverage brands, FMCG catalogue",
			seo.SchemaWebPage,
		),
		Body: sections(
			"introduction", `<p>Discover our carefully curated portfolio of premium FMCG products from globally recognized brands, each selected for quality, market appeal, and consumer satisfaction.</p><p>Our diverse range includes chocolates, candies, snacks, beverages, coffee, and specialty items that meet the evolving demands of Pakistani consumers.</p>`,
			"quality_commitment", `<h3>Our Quality Commitment</h3><p>Every product in our portfolio undergoes rigorous quality checks and is sourced directly from authorized manufacturers. We ensure:</p><ul><li>Authentic products with proper certifications</li><li>Fresh inventory with optimal shelf life</li><li>Proper storage and handling throughout the supply chain</li><li>Compliance with local and international quality standards</li></ul><p>At Sweet Bliss, our goal is not just to supply products but to deliver solutions that drive sales, build customer loyalty, and strengthen your business.</p>`,
		),
	}
}

func partnershipsDefinition() content.Definition {
	return content.Definition{
		Type:        content.TypePartnerships,
		Title:       "Business Partnerships",
		Slug:        "partnerships",
		ShowInMenus: true,
		SEO: pageSEO(
			"FMCG Business Partnerships | Sweet Bliss Distribution Partners",
			"Join Sweet Bliss as a distribution partner. Comprehensive partnership opportunities for retailers, wholesalers, and distributors in Pakistan.",
			"Business Partnership Opportunities - FMCG Distribution | Sweet Bliss Pakistan",
			"business partnerships, distribution partners, wholesale opportunities, retailer partnerships, FMCG business",
			seo.SchemaWebPage,
		),
		Body: sections(
			"introduction", `<p>Partner with Sweet Bliss to unlock new business opportunities in Pakistan's growing FMCG market. We believe in building mutually beneficial relationships that drive growth and success.</p>`,
			"why_partner", `<h3>Why Partner with Sweet Bliss?</h3><ul><li><strong>Proven Track Record:</strong> Established relationships with global suppliers and local markets</li><li><strong>Quality Assurance:</strong> Rigorous quality control and authentic products</li><li><strong>Market Knowledge:</strong> Deep understanding of Pakistani consumer preferences</li><li><strong>Operational Excellence:</strong> Efficient logistics and distribution network</li><li><strong>Business Support:</strong> Ongoing marketing, training, and business development assistance</li></ul>`,
			"partnership_benefits", `<h3>Partnership Benefits</h3><ul><li>Access to premium international brands</li><li>Competitive pricing and flexible payment terms</li><li>Marketing and promotional support</li><li>Product training and knowledge sharing</li><li>Dedicated account management</li><li>Territory protection and exclusive opportunities</li><li>Business growth consultation</li></ul>`,
			"how_to_partner", `<h3>How to Become a Partner</h3><p>Getting started with Sweet Bliss is simple:</p><ol><li><strong>Initial Consultation:</strong> Contact our team to discuss your business requirements</li><li><strong>Business Assessment:</strong> We evaluate mutual fit and partnership potential</li><li><strong>Partnership Agreement:</strong> Customized terms based on your market and requirements</li><li><strong>Onboarding:</strong> Product training, system setup, and launch support</li><li><strong>Ongoing Support:</strong> Continuous business development and growth assistance</li></ol><p>Ready to grow your business with Sweet Bliss? <a href="/contact/">Contact us today</a> to explore partnership opportunities.</p>`,
		),
	}
}
