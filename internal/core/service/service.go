package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.StorefrontReader = (*Service)(nil)
var _ port.CartService = (*Service)(nil)
var _ port.CacheRevalidator = (*Service)(nil)

// Service orchestrates the gateway operations: it delegates to the
// backend adapter, decorates listings with the synthetic "All"
// collection and keeps the cache-tag contract on the cart write path.
type Service struct {
	menu        port.MenuProvider
	products    port.ProductProvider
	collections port.CollectionProvider
	cartReader  port.CartProvider
	cartWriter  port.CartLinesAdder
	invalidator port.TagInvalidator
}

func New(
	menu port.MenuProvider,
	products port.ProductProvider,
	collections port.CollectionProvider,
	cartReader port.CartProvider,
	cartWriter port.CartLinesAdder,
	invalidator port.TagInvalidator,
) Service {
	return Service{
		menu,
		products,
		collections,
		cartReader,
		cartWriter,
		invalidator,
	}
}

func (s Service) GetMenu(
	ctx context.Context, handle string,
) ([]domain.MenuItem, error) {
	const op = "Service.GetMenu"

	items, err := s.menu.Menu(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s Service) GetProducts(
	ctx context.Context, q domain.ProductQuery,
) ([]domain.Product, error) {
	const op = "Service.GetProducts"

	ps, err := s.products.Products(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// GetCollections prepends the synthetic "All" collection representing
// the unfiltered catalog, then the backend collections in their
// original order.
func (s Service) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	const op = "Service.GetCollections"

	cs, err := s.collections.Collections(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	all := domain.Collection{
		Handle:      "",
		Title:       "All",
		Description: "All products",
		SEO: domain.SEO{
			Title:       "All",
			Description: "All products",
		},
		Path:      "/search",
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return append([]domain.Collection{all}, cs...), nil
}

func (s Service) GetCollectionProducts(
	ctx context.Context, handle string, q domain.ProductQuery,
) ([]domain.Product, error) {
	const op = "Service.GetCollectionProducts"

	ps, err := s.collections.CollectionProducts(ctx, handle, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) GetProduct(
	ctx context.Context, handle string,
) (domain.Product, bool, error) {
	const op = "Service.GetProduct"

	p, found, err := s.products.Product(ctx, handle)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return p, found, nil
}

func (s Service) GetProductRecommendations(
	ctx context.Context, productID string,
) ([]domain.Product, error) {
	const op = "Service.GetProductRecommendations"

	ps, err := s.products.Recommendations(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// GetCart short-circuits to "no cart" for an absent cart id without
// touching the network.
func (s Service) GetCart(
	ctx context.Context, cartID string,
) (domain.Cart, bool, error) {
	const op = "Service.GetCart"

	if cartID == "" {
		return domain.Cart{}, false, nil
	}

	cart, found, err := s.cartReader.Cart(ctx, cartID)
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return cart, found, nil
}

// AddToCart issues the cart mutation and invalidates the cart tag
// before reporting success, so an immediate re-read observes fresh
// state. Backend internals are not surfaced to the caller: any
// non-validation failure collapses to [domain.ErrCartUpdate].
func (s Service) AddToCart(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	const op = "Service.AddToCart"
	log := slog.With("op", op)

	if err := s.validateAddToCart(cartID, lines); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.cartWriter.AddCartLines(ctx, cartID, lines)
	if err != nil {
		log.Error("cart mutation failed", "err", err)
		return domain.Cart{}, fmt.Errorf("%s: %w", op, domain.ErrCartUpdate)
	}

	s.invalidator.Invalidate(domain.TagCart)

	return cart, nil
}

func (s Service) validateAddToCart(
	cartID string, lines []domain.CartLineInput,
) error {
	if cartID == "" {
		return domain.ErrMissingCartID
	}
	if len(lines) == 0 {
		return domain.ErrEmptyCartLines
	}
	for _, line := range lines {
		if line.MerchandiseID == "" {
			return domain.ErrMissingMerchandise
		}
	}
	return nil
}

// Revalidate maps a backend webhook topic onto the tags it staled and
// evicts them. Catalog topics stale both listings vocabularies, cart
// topics stale the cart tag. Unknown topics evict nothing.
func (s Service) Revalidate(topic string) []string {
	const op = "Service.Revalidate"
	log := slog.With("op", op)

	var tags []string
	switch {
	case strings.HasPrefix(topic, "collections/"),
		strings.HasPrefix(topic, "products/"):
		tags = []string{domain.TagCollections, domain.TagProducts}
	case strings.HasPrefix(topic, "carts/"),
		strings.HasPrefix(topic, "checkouts/"):
		tags = []string{domain.TagCart}
	default:
		log.Warn("unknown webhook topic", "topic", topic)
		return nil
	}

	s.invalidator.Invalidate(tags...)
	log.Info("cache tags evicted", "topic", topic, "tags", tags)
	return tags
}
