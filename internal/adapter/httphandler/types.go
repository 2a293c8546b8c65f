package httphandler

import "github.com/niksmo/storefront/internal/core/domain"

type (
	Money struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currency_code"`
	}

	Image struct {
		URL     string `json:"url"`
		AltText string `json:"alt_text"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
	}

	SEO struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	SelectedOption struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	ProductOption struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}

	ProductVariant struct {
		ID               string           `json:"id"`
		Title            string           `json:"title"`
		AvailableForSale bool             `json:"available_for_sale"`
		SelectedOptions  []SelectedOption `json:"selected_options"`
		Price            Money            `json:"price"`
	}

	PriceRange struct {
		MinVariantPrice Money `json:"min_variant_price"`
		MaxVariantPrice Money `json:"max_variant_price"`
	}

	Product struct {
		ID               string           `json:"id"`
		Handle           string           `json:"handle"`
		AvailableForSale bool             `json:"available_for_sale"`
		Title            string           `json:"title"`
		Description      string           `json:"description"`
		DescriptionHTML  string           `json:"description_html"`
		Options          []ProductOption  `json:"options"`
		PriceRange       PriceRange       `json:"price_range"`
		Variants         []ProductVariant `json:"variants"`
		FeaturedImage    Image            `json:"featured_image"`
		Images           []Image          `json:"images"`
		SEO              SEO              `json:"seo"`
		Tags             []string         `json:"tags"`
		UpdatedAt        string           `json:"updated_at"`
	}

	Collection struct {
		Handle      string `json:"handle"`
		Title       string `json:"title"`
		Description string `json:"description"`
		SEO         SEO    `json:"seo"`
		UpdatedAt   string `json:"updated_at"`
		Path        string `json:"path"`
	}

	Merchandise struct {
		ID              string           `json:"id"`
		Title           string           `json:"title"`
		SelectedOptions []SelectedOption `json:"selected_options"`
		Product         Product          `json:"product"`
	}

	CartLine struct {
		ID          string      `json:"id"`
		Quantity    int         `json:"quantity"`
		TotalAmount Money       `json:"total_amount"`
		Merchandise Merchandise `json:"merchandise"`
	}

	CartCost struct {
		SubtotalAmount Money `json:"subtotal_amount"`
		TotalAmount    Money `json:"total_amount"`
		TotalTaxAmount Money `json:"total_tax_amount"`
	}

	Cart struct {
		ID            string     `json:"id"`
		CheckoutURL   string     `json:"checkout_url"`
		Cost          CartCost   `json:"cost"`
		Lines         []CartLine `json:"lines"`
		TotalQuantity int        `json:"total_quantity"`
	}

	MenuItem struct {
		Title string `json:"title"`
		Path  string `json:"path"`
	}

	CartLineInput struct {
		MerchandiseID string `json:"merchandise_id"`
		Quantity      int    `json:"quantity"`
	}
)

func toMoney(m domain.Money) Money {
	return Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func toImage(img domain.Image) Image {
	return Image{
		URL:     img.URL,
		AltText: img.AltText,
		Width:   img.Width,
		Height:  img.Height,
	}
}

func toProduct(p domain.Product) Product {
	options := make([]ProductOption, 0, len(p.Options))
	for _, o := range p.Options {
		options = append(options, ProductOption{ID: o.ID, Name: o.Name, Values: o.Values})
	}

	variants := make([]ProductVariant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, ProductVariant{
			ID:               v.ID,
			Title:            v.Title,
			AvailableForSale: v.AvailableForSale,
			SelectedOptions:  toSelectedOptions(v.SelectedOptions),
			Price:            toMoney(v.Price),
		})
	}

	images := make([]Image, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, toImage(img))
	}

	return Product{
		ID:               p.ID,
		Handle:           p.Handle,
		AvailableForSale: p.AvailableForSale,
		Title:            p.Title,
		Description:      p.Description,
		DescriptionHTML:  p.DescriptionHTML,
		Options:          options,
		PriceRange: PriceRange{
			MinVariantPrice: toMoney(p.PriceRange.MinVariantPrice),
			MaxVariantPrice: toMoney(p.PriceRange.MaxVariantPrice),
		},
		Variants:      variants,
		FeaturedImage: toImage(p.FeaturedImage),
		Images:        images,
		SEO:           SEO{Title: p.SEO.Title, Description: p.SEO.Description},
		Tags:          p.Tags,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toSelectedOptions(opts []domain.SelectedOption) []SelectedOption {
	out := make([]SelectedOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, SelectedOption{Name: o.Name, Value: o.Value})
	}
	return out
}

func toCollections(cs []domain.Collection) []Collection {
	out := make([]Collection, 0, len(cs))
	for _, c := range cs {
		out = append(out, Collection{
			Handle:      c.Handle,
			Title:       c.Title,
			Description: c.Description,
			SEO:         SEO{Title: c.SEO.Title, Description: c.SEO.Description},
			UpdatedAt:   c.UpdatedAt,
			Path:        c.Path,
		})
	}
	return out
}

func toCart(c domain.Cart) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLine{
			ID:          l.ID,
			Quantity:    l.Quantity,
			TotalAmount: toMoney(l.TotalAmount),
			Merchandise: Merchandise{
				ID:              l.Merchandise.ID,
				Title:           l.Merchandise.Title,
				SelectedOptions: toSelectedOptions(l.Merchandise.SelectedOptions),
				Product:         toProduct(l.Merchandise.Product),
			},
		})
	}

	return Cart{
		ID:          c.ID,
		CheckoutURL: c.CheckoutURL,
		Cost: CartCost{
			SubtotalAmount: toMoney(c.Cost.SubtotalAmount),
			TotalAmount:    toMoney(c.Cost.TotalAmount),
			TotalTaxAmount: toMoney(c.Cost.TotalTaxAmount),
		},
		Lines:         lines,
		TotalQuantity: c.TotalQuantity,
	}
}

func toMenu(items []domain.MenuItem) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, MenuItem{Title: item.Title, Path: item.Path})
	}
	return out
}
