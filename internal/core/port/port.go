package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Outbound ports, implemented by the commerce backend adapter.

type MenuProvider interface {
	Menu(ctx context.Context, handle string) ([]domain.MenuItem, error)
}

type ProductProvider interface {
	Products(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	Product(ctx context.Context, handle string) (domain.Product, bool, error)
	Recommendations(ctx context.Context, productID string) ([]domain.Product, error)
}

type CollectionProvider interface {
	Collections(ctx context.Context) ([]domain.Collection, error)
	CollectionProducts(
		ctx context.Context, handle string, q domain.ProductQuery,
	) ([]domain.Product, error)
}

type CartProvider interface {
	Cart(ctx context.Context, cartID string) (domain.Cart, bool, error)
}

type CartLinesAdder interface {
	AddCartLines(
		ctx context.Context, cartID string, lines []domain.CartLineInput,
	) (domain.Cart, error)
}

// ResponseCache associates cached response payloads with invalidation
// tags. Implementations must allow concurrent lookups and must make a
// completed Invalidate visible to every subsequent Get.
type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, tags []string)
	Invalidate(tags ...string)
}

type TagInvalidator interface {
	Invalidate(tags ...string)
}

// Inbound ports, implemented by the core service and consumed by the
// HTTP layer.

type StorefrontReader interface {
	GetMenu(ctx context.Context, handle string) ([]domain.MenuItem, error)
	GetProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	GetCollections(ctx context.Context) ([]domain.Collection, error)
	GetCollectionProducts(
		ctx context.Context, handle string, q domain.ProductQuery,
	) ([]domain.Product, error)
	GetProduct(ctx context.Context, handle string) (domain.Product, bool, error)
	GetProductRecommendations(ctx context.Context, productID string) ([]domain.Product, error)
}

type CartService interface {
	GetCart(ctx context.Context, cartID string) (domain.Cart, bool, error)
	AddToCart(
		ctx context.Context, cartID string, lines []domain.CartLineInput,
	) (domain.Cart, error)
}

// CacheRevalidator maps a backend webhook topic onto cache tags and
// evicts them, returning the evicted tags.
type CacheRevalidator interface {
	Revalidate(topic string) []string
}
