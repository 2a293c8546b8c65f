package shopify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.MenuProvider = (*Client)(nil)
var _ port.ProductProvider = (*Client)(nil)
var _ port.CollectionProvider = (*Client)(nil)
var _ port.CartProvider = (*Client)(nil)
var _ port.CartLinesAdder = (*Client)(nil)

func (c *Client) Menu(
	ctx context.Context, handle string,
) ([]domain.MenuItem, error) {
	const op = "shopify.Client.Menu"

	var data menuData
	err := c.fetch(ctx, request{
		query:     getMenuQuery,
		variables: map[string]any{"handle": handle},
		tags:      []string{domain.TagCollections},
		mode:      cacheable,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if data.Menu == nil {
		return nil, nil
	}
	return c.reshapeMenu(data.Menu.Items), nil
}

func (c *Client) Products(
	ctx context.Context, q domain.ProductQuery,
) ([]domain.Product, error) {
	const op = "shopify.Client.Products"

	var data productsData
	err := c.fetch(ctx, request{
		query:     getProductsQuery,
		variables: productQueryVariables(q, q.SortKey),
		tags:      []string{domain.TagProducts},
		mode:      cacheable,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.reshapeProducts(flattenConnection(data.Products)), nil
}

// Product fetches a single product unfiltered, so a hidden product
// stays directly addressable by handle.
func (c *Client) Product(
	ctx context.Context, handle string,
) (domain.Product, bool, error) {
	const op = "shopify.Client.Product"

	var data productData
	err := c.fetch(ctx, request{
		query:     getProductQuery,
		variables: map[string]any{"handle": handle},
		tags:      []string{domain.TagProducts},
		mode:      cacheable,
	}, &data)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("%s: %w", op, err)
	}

	if data.Product == nil {
		return domain.Product{}, false, nil
	}

	p, _ := c.reshapeProduct(*data.Product, false)
	return p, true, nil
}

func (c *Client) Recommendations(
	ctx context.Context, productID string,
) ([]domain.Product, error) {
	const op = "shopify.Client.Recommendations"

	var data recommendationsData
	err := c.fetch(ctx, request{
		query:     getProductRecommendationsQuery,
		variables: map[string]any{"productId": productID},
		tags:      []string{domain.TagProducts},
		mode:      cacheable,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.reshapeProducts(data.ProductRecommendations), nil
}

func (c *Client) Collections(ctx context.Context) ([]domain.Collection, error) {
	const op = "shopify.Client.Collections"

	var data collectionsData
	err := c.fetch(ctx, request{
		query: getCollectionsQuery,
		tags:  []string{domain.TagCollections},
		mode:  cacheable,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reshapeCollections(flattenConnection(data.Collections)), nil
}

// CollectionProducts returns an empty listing for an unknown
// collection handle, degrading to "no results" instead of failing.
func (c *Client) CollectionProducts(
	ctx context.Context, handle string, q domain.ProductQuery,
) ([]domain.Product, error) {
	const op = "shopify.Client.CollectionProducts"
	log := slog.With("op", op)

	// The collection-scoped query speaks the ProductCollectionSortKeys
	// dialect, which names the creation-time sort key CREATED.
	sortKey := q.SortKey
	if sortKey == "CREATED_AT" {
		sortKey = "CREATED"
	}

	variables := productQueryVariables(q, sortKey)
	variables["handle"] = handle

	var data collectionProductsData
	err := c.fetch(ctx, request{
		query:     getCollectionProductsQuery,
		variables: variables,
		tags:      []string{domain.TagCollections, domain.TagProducts},
		mode:      cacheable,
	}, &data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if data.Collection == nil {
		log.Warn("no collection found", "handle", handle)
		return nil, nil
	}

	return c.reshapeProducts(flattenConnection(data.Collection.Products)), nil
}

func (c *Client) Cart(
	ctx context.Context, cartID string,
) (domain.Cart, bool, error) {
	const op = "shopify.Client.Cart"

	var data cartData
	err := c.fetch(ctx, request{
		query:     getCartQuery,
		variables: map[string]any{"cartId": cartID},
		tags:      []string{domain.TagCart},
		mode:      cacheable,
	}, &data)
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("%s: %w", op, err)
	}

	if data.Cart == nil {
		return domain.Cart{}, false, nil
	}
	return c.reshapeCart(*data.Cart), true, nil
}

func (c *Client) AddCartLines(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	const op = "shopify.Client.AddCartLines"

	wireLines := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		wireLines = append(wireLines, map[string]any{
			"merchandiseId": line.MerchandiseID,
			"quantity":      line.Quantity,
		})
	}

	var data cartLinesAddData
	err := c.fetch(ctx, request{
		query: addToCartMutation,
		variables: map[string]any{
			"cartId": cartID,
			"lines":  wireLines,
		},
		mode: noCache,
	}, &data)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	if data.CartLinesAdd.Cart == nil {
		return domain.Cart{}, fmt.Errorf("%s: mutation returned no cart", op)
	}
	return c.reshapeCart(*data.CartLinesAdd.Cart), nil
}

func productQueryVariables(
	q domain.ProductQuery, sortKey string,
) map[string]any {
	variables := make(map[string]any)
	if q.Query != "" {
		variables["query"] = q.Query
	}
	if sortKey != "" {
		variables["sortKey"] = sortKey
	}
	if q.Reverse {
		variables["reverse"] = q.Reverse
	}
	return variables
}
