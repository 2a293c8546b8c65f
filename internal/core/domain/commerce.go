package domain

// Cache tags form a closed vocabulary. Reads declare which tags their
// cached responses depend on, writes declare which tags they invalidate.
const (
	TagCollections = "collections"
	TagProducts    = "products"
	TagCart        = "cart"
)

// HiddenCollectionPrefix marks collections excluded from public listings.
const HiddenCollectionPrefix = "hidden"

type (
	// Money keeps the amount as a decimal string to preserve precision.
	// It is never parsed to floating point in this layer.
	Money struct {
		Amount       string
		CurrencyCode string
	}

	Image struct {
		URL     string
		AltText string
		Width   int
		Height  int
	}

	SEO struct {
		Title       string
		Description string
	}

	SelectedOption struct {
		Name  string
		Value string
	}

	ProductOption struct {
		ID     string
		Name   string
		Values []string
	}

	ProductVariant struct {
		ID               string
		Title            string
		AvailableForSale bool
		SelectedOptions  []SelectedOption
		Price            Money
	}

	PriceRange struct {
		MinVariantPrice Money
		MaxVariantPrice Money
	}

	Product struct {
		ID               string
		Handle           string
		AvailableForSale bool
		Title            string
		Description      string
		DescriptionHTML  string
		Options          []ProductOption
		PriceRange       PriceRange
		Variants         []ProductVariant
		FeaturedImage    Image
		Images           []Image
		SEO              SEO
		Tags             []string
		UpdatedAt        string
	}

	Collection struct {
		Handle      string
		Title       string
		Description string
		SEO         SEO
		UpdatedAt   string
		Path        string
	}

	Merchandise struct {
		ID              string
		Title           string
		SelectedOptions []SelectedOption
		Product         Product
	}

	CartLine struct {
		ID          string
		Quantity    int
		TotalAmount Money
		Merchandise Merchandise
	}

	CartCost struct {
		SubtotalAmount Money
		TotalAmount    Money
		TotalTaxAmount Money
	}

	Cart struct {
		ID            string
		CheckoutURL   string
		Cost          CartCost
		Lines         []CartLine
		TotalQuantity int
	}

	// CartLineInput describes one line of an add-to-cart request.
	CartLineInput struct {
		MerchandiseID string
		Quantity      int
	}

	MenuItem struct {
		Title string
		Path  string
	}

	// ProductQuery narrows product listings. Zero values mean
	// "backend default".
	ProductQuery struct {
		Query   string
		SortKey string
		Reverse bool
	}
)
