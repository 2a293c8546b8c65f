package shopify

// Wire types mirror the backend's paginated GraphQL shapes. They exist
// only at the decode boundary: every operation response is validated
// into one of these before reshaping into the domain model.

type (
	edge[T any] struct {
		Node *T `json:"node"`
	}

	connection[T any] struct {
		Edges []edge[T] `json:"edges"`
	}
)

// flattenConnection unwraps the edges/node pagination envelope into a
// plain ordered slice, dropping absent nodes.
func flattenConnection[T any](c connection[T]) []T {
	nodes := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		if e.Node == nil {
			continue
		}
		nodes = append(nodes, *e.Node)
	}
	return nodes
}

type (
	wireMoney struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	}

	wireImage struct {
		URL     string `json:"url"`
		AltText string `json:"altText"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
	}

	wireSEO struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	wireSelectedOption struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	wireProductOption struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}

	wireVariant struct {
		ID               string               `json:"id"`
		Title            string               `json:"title"`
		AvailableForSale bool                 `json:"availableForSale"`
		SelectedOptions  []wireSelectedOption `json:"selectedOptions"`
		Price            wireMoney            `json:"price"`
	}

	wirePriceRange struct {
		MinVariantPrice wireMoney `json:"minVariantPrice"`
		MaxVariantPrice wireMoney `json:"maxVariantPrice"`
	}

	wireProduct struct {
		ID               string                  `json:"id"`
		Handle           string                  `json:"handle"`
		AvailableForSale bool                    `json:"availableForSale"`
		Title            string                  `json:"title"`
		Description      string                  `json:"description"`
		DescriptionHTML  string                  `json:"descriptionHtml"`
		Options          []wireProductOption     `json:"options"`
		PriceRange       wirePriceRange          `json:"priceRange"`
		Variants         connection[wireVariant] `json:"variants"`
		FeaturedImage    wireImage               `json:"featuredImage"`
		Images           connection[wireImage]   `json:"images"`
		SEO              wireSEO                 `json:"seo"`
		Tags             []string                `json:"tags"`
		UpdatedAt        string                  `json:"updatedAt"`
	}

	wireCollection struct {
		Handle      string  `json:"handle"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		SEO         wireSEO `json:"seo"`
		UpdatedAt   string  `json:"updatedAt"`
	}

	wireMerchandise struct {
		ID              string               `json:"id"`
		Title           string               `json:"title"`
		SelectedOptions []wireSelectedOption `json:"selectedOptions"`
		Product         wireProduct          `json:"product"`
	}

	wireCartLine struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
		Cost     struct {
			TotalAmount wireMoney `json:"totalAmount"`
		} `json:"cost"`
		Merchandise wireMerchandise `json:"merchandise"`
	}

	wireCartCost struct {
		SubtotalAmount wireMoney  `json:"subtotalAmount"`
		TotalAmount    wireMoney  `json:"totalAmount"`
		TotalTaxAmount *wireMoney `json:"totalTaxAmount"`
	}

	wireCart struct {
		ID            string                   `json:"id"`
		CheckoutURL   string                   `json:"checkoutUrl"`
		Cost          wireCartCost             `json:"cost"`
		Lines         connection[wireCartLine] `json:"lines"`
		TotalQuantity int                      `json:"totalQuantity"`
	}

	wireMenuItem struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}
)

// Per-operation response payloads. Optional objects are pointers so a
// missing collection, product or cart is distinguishable from an empty
// one.

type (
	menuData struct {
		Menu *struct {
			Items []wireMenuItem `json:"items"`
		} `json:"menu"`
	}

	productsData struct {
		Products connection[wireProduct] `json:"products"`
	}

	productData struct {
		Product *wireProduct `json:"product"`
	}

	recommendationsData struct {
		ProductRecommendations []wireProduct `json:"productRecommendations"`
	}

	collectionsData struct {
		Collections connection[wireCollection] `json:"collections"`
	}

	collectionProductsData struct {
		Collection *struct {
			Products connection[wireProduct] `json:"products"`
		} `json:"collection"`
	}

	cartData struct {
		Cart *wireCart `json:"cart"`
	}

	cartLinesAddData struct {
		CartLinesAdd struct {
			Cart *wireCart `json:"cart"`
		} `json:"cartLinesAdd"`
	}
)
