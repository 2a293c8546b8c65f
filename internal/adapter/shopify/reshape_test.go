package shopify

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHiddenTag = "frontend-hidden"

func testClient() *Client {
	return &Client{
		storeDomain: "https://store.example",
		hiddenTag:   testHiddenTag,
	}
}

func imageConn(imgs ...wireImage) connection[wireImage] {
	var c connection[wireImage]
	for i := range imgs {
		c.Edges = append(c.Edges, edge[wireImage]{Node: &imgs[i]})
	}
	return c
}

func TestFlattenConnection(t *testing.T) {
	t.Run("PreservesOrder", func(t *testing.T) {
		one, two, three := "one", "two", "three"
		c := connection[string]{Edges: []edge[string]{
			{Node: &one}, {Node: &two}, {Node: &three},
		}}
		assert.Equal(t, []string{"one", "two", "three"}, flattenConnection(c))
	})

	t.Run("DropsAbsentNodes", func(t *testing.T) {
		one, three := "one", "three"
		c := connection[string]{Edges: []edge[string]{
			{Node: &one}, {Node: nil}, {Node: &three},
		}}
		assert.Equal(t, []string{"one", "three"}, flattenConnection(c))
	})

	t.Run("EmptyConnection", func(t *testing.T) {
		got := flattenConnection(connection[string]{})
		assert.Empty(t, got)
	})
}

func TestReshapeImages(t *testing.T) {
	t.Run("SynthesizesMissingAltText", func(t *testing.T) {
		c := imageConn(wireImage{
			URL: "https://cdn.example/files/front-view.jpg", Width: 100, Height: 100,
		})

		got := reshapeImages(c, "Acme Shirt")

		require.Len(t, got, 1)
		assert.Equal(t, "Acme Shirt - front-view", got[0].AltText)
	})

	t.Run("KeepsExistingAltText", func(t *testing.T) {
		c := imageConn(wireImage{
			URL: "https://cdn.example/files/front-view.jpg", AltText: "original",
		})

		got := reshapeImages(c, "Acme Shirt")

		require.Len(t, got, 1)
		assert.Equal(t, "original", got[0].AltText)
	})
}

func testWireProduct(handle string, tags ...string) wireProduct {
	return wireProduct{
		ID:               "gid://product/" + handle,
		Handle:           handle,
		AvailableForSale: true,
		Title:            "Product " + handle,
		Tags:             tags,
		PriceRange: wirePriceRange{
			MinVariantPrice: wireMoney{Amount: "10.0", CurrencyCode: "USD"},
			MaxVariantPrice: wireMoney{Amount: "20.0", CurrencyCode: "USD"},
		},
		Variants: connection[wireVariant]{Edges: []edge[wireVariant]{
			{Node: &wireVariant{
				ID:               "gid://variant/" + handle,
				Title:            "Default",
				AvailableForSale: true,
				SelectedOptions:  []wireSelectedOption{{Name: "Size", Value: "M"}},
				Price:            wireMoney{Amount: "10.0", CurrencyCode: "USD"},
			}},
		}},
		Images: imageConn(wireImage{URL: "https://cdn.example/files/" + handle + ".png"}),
	}
}

func TestReshapeProduct(t *testing.T) {
	c := testClient()

	t.Run("FlattensImagesAndVariants", func(t *testing.T) {
		got, ok := c.reshapeProduct(testWireProduct("shirt"), true)

		require.True(t, ok)
		require.Len(t, got.Images, 1)
		require.Len(t, got.Variants, 1)
		assert.Equal(t, "Product shirt - shirt", got.Images[0].AltText)
		assert.Equal(t, "10.0", got.Variants[0].Price.Amount)
	})

	t.Run("FiltersHiddenProduct", func(t *testing.T) {
		_, ok := c.reshapeProduct(testWireProduct("secret", testHiddenTag), true)
		assert.False(t, ok)
	})

	t.Run("UnfilteredKeepsHiddenProduct", func(t *testing.T) {
		got, ok := c.reshapeProduct(testWireProduct("secret", testHiddenTag), false)
		require.True(t, ok)
		assert.Equal(t, "secret", got.Handle)
	})
}

func TestReshapeProducts(t *testing.T) {
	c := testClient()

	ps := []wireProduct{
		testWireProduct("a"),
		testWireProduct("b", testHiddenTag),
		testWireProduct("c", "sale"),
	}

	got := c.reshapeProducts(ps)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Handle)
	assert.Equal(t, "c", got[1].Handle)
}

// Reshaping an already-normalized product again yields structurally
// identical output: no hidden accumulation.
func TestReshapeProductIdempotent(t *testing.T) {
	c := testClient()

	first, ok := c.reshapeProduct(testWireProduct("shirt"), true)
	require.True(t, ok)

	again := wireProduct{
		ID:               first.ID,
		Handle:           first.Handle,
		AvailableForSale: first.AvailableForSale,
		Title:            first.Title,
		Tags:             first.Tags,
		PriceRange: wirePriceRange{
			MinVariantPrice: wireMoney(first.PriceRange.MinVariantPrice),
			MaxVariantPrice: wireMoney(first.PriceRange.MaxVariantPrice),
		},
		Variants: connection[wireVariant]{Edges: []edge[wireVariant]{
			{Node: &wireVariant{
				ID:               first.Variants[0].ID,
				Title:            first.Variants[0].Title,
				AvailableForSale: first.Variants[0].AvailableForSale,
				SelectedOptions: []wireSelectedOption{{
					Name:  first.Variants[0].SelectedOptions[0].Name,
					Value: first.Variants[0].SelectedOptions[0].Value,
				}},
				Price: wireMoney(first.Variants[0].Price),
			}},
		}},
		Images: imageConn(wireImage{
			URL:     first.Images[0].URL,
			AltText: first.Images[0].AltText,
			Width:   first.Images[0].Width,
			Height:  first.Images[0].Height,
		}),
	}

	second, ok := c.reshapeProduct(again, true)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestReshapeCollections(t *testing.T) {
	t.Run("DerivesPath", func(t *testing.T) {
		got := reshapeCollections([]wireCollection{{Handle: "shoes", Title: "Shoes"}})
		require.Len(t, got, 1)
		assert.Equal(t, "/search/shoes", got[0].Path)
	})

	t.Run("DropsHiddenPrefix", func(t *testing.T) {
		got := reshapeCollections([]wireCollection{
			{Handle: "hidden-homepage-carousel"},
			{Handle: "shoes"},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "shoes", got[0].Handle)
	})
}

func TestReshapeCart(t *testing.T) {
	c := testClient()

	baseCart := func() wireCart {
		return wireCart{
			ID:          "cart-1",
			CheckoutURL: "https://store.example/checkout",
			Cost: wireCartCost{
				SubtotalAmount: wireMoney{Amount: "30.0", CurrencyCode: "EUR"},
				TotalAmount:    wireMoney{Amount: "30.0", CurrencyCode: "EUR"},
			},
			Lines: connection[wireCartLine]{Edges: []edge[wireCartLine]{
				{Node: &wireCartLine{
					ID:          "line-1",
					Quantity:    2,
					Merchandise: wireMerchandise{ID: "variant-1", Product: testWireProduct("shirt")},
				}},
			}},
			TotalQuantity: 2,
		}
	}

	t.Run("BackfillsMissingTax", func(t *testing.T) {
		got := c.reshapeCart(baseCart())
		want := domain.Money{Amount: "0.0", CurrencyCode: "USD"}
		assert.Equal(t, want, got.Cost.TotalTaxAmount)
	})

	t.Run("KeepsPresentTax", func(t *testing.T) {
		w := baseCart()
		w.Cost.TotalTaxAmount = &wireMoney{Amount: "1.5", CurrencyCode: "EUR"}

		got := c.reshapeCart(w)

		want := domain.Money{Amount: "1.5", CurrencyCode: "EUR"}
		assert.Equal(t, want, got.Cost.TotalTaxAmount)
	})

	t.Run("FlattensLines", func(t *testing.T) {
		got := c.reshapeCart(baseCart())
		require.Len(t, got.Lines, 1)
		assert.Equal(t, "variant-1", got.Lines[0].Merchandise.ID)
		assert.Equal(t, "shirt", got.Lines[0].Merchandise.Product.Handle)
	})
}

func TestReshapeMenu(t *testing.T) {
	c := testClient()

	items := []wireMenuItem{
		{Title: "Shoes", URL: "https://store.example/collections/shoes"},
		{Title: "About", URL: "https://store.example/pages/about"},
		{Title: "Home", URL: "https://store.example/"},
	}

	got := c.reshapeMenu(items)

	require.Len(t, got, 3)
	assert.Equal(t, domain.MenuItem{Title: "Shoes", Path: "/search/shoes"}, got[0])
	assert.Equal(t, domain.MenuItem{Title: "About", Path: "/about"}, got[1])
	assert.Equal(t, domain.MenuItem{Title: "Home", Path: "/"}, got[2])
}
