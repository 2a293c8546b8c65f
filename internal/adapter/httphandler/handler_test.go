package httphandler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRevalidator struct {
	mock.Mock
}

func (m *MockRevalidator) Revalidate(topic string) []string {
	args := m.Called(topic)
	return args.Get(0).([]string)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(
	ctx context.Context, cartID string,
) (domain.Cart, bool, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(domain.Cart), args.Bool(1), args.Error(2)
}

func (m *MockCartService) AddToCart(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, lines)
	return args.Get(0).(domain.Cart), args.Error(1)
}

type MockStorefront struct {
	mock.Mock
}

func (m *MockStorefront) GetMenu(
	ctx context.Context, handle string,
) ([]domain.MenuItem, error) {
	args := m.Called(ctx, handle)
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockStorefront) GetProducts(
	ctx context.Context, q domain.ProductQuery,
) ([]domain.Product, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockStorefront) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Collection), args.Error(1)
}

func (m *MockStorefront) GetCollectionProducts(
	ctx context.Context, handle string, q domain.ProductQuery,
) ([]domain.Product, error) {
	args := m.Called(ctx, handle, q)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockStorefront) GetProduct(
	ctx context.Context, handle string,
) (domain.Product, bool, error) {
	args := m.Called(ctx, handle)
	return args.Get(0).(domain.Product), args.Bool(1), args.Error(2)
}

func (m *MockStorefront) GetProductRecommendations(
	ctx context.Context, productID string,
) ([]domain.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func TestRevalidateHandler(t *testing.T) {
	const secret = "webhook-secret"

	newServer := func(revalidator *MockRevalidator) *httptest.Server {
		mux := http.NewServeMux()
		httphandler.RegisterRevalidate(mux, revalidator, secret)
		s := httptest.NewServer(mux)
		t.Cleanup(s.Close)
		return s
	}

	t.Run("RejectsInvalidSecret", func(t *testing.T) {
		revalidator := new(MockRevalidator)
		s := newServer(revalidator)

		resp, err := http.Post(
			s.URL+"/v1/revalidate?secret=wrong", "application/json", nil,
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		revalidator.AssertNotCalled(t, "Revalidate", mock.Anything)
	})

	t.Run("EvictsByTopic", func(t *testing.T) {
		revalidator := new(MockRevalidator)
		revalidator.On("Revalidate", "products/update").
			Return([]string{domain.TagCollections, domain.TagProducts})
		s := newServer(revalidator)

		req, err := http.NewRequest(
			http.MethodPost, s.URL+"/v1/revalidate?secret="+secret, nil,
		)
		require.NoError(t, err)
		req.Header.Set("X-Shopify-Topic", "products/update")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		revalidator.AssertExpectations(t)
	})
}

func TestCartHandler(t *testing.T) {
	newServer := func(cart *MockCartService) *httptest.Server {
		mux := http.NewServeMux()
		httphandler.RegisterCart(mux, cart)
		s := httptest.NewServer(mux)
		t.Cleanup(s.Close)
		return s
	}

	t.Run("GetCartNoID", func(t *testing.T) {
		cart := new(MockCartService)
		cart.On("GetCart", mock.Anything, "").
			Return(domain.Cart{}, false, nil)
		s := newServer(cart)

		resp, err := http.Get(s.URL + "/v1/cart")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("AddLinesValidationFailure", func(t *testing.T) {
		cart := new(MockCartService)
		cart.On("AddToCart", mock.Anything, "", mock.Anything).
			Return(domain.Cart{}, domain.ErrMissingCartID)
		s := newServer(cart)

		resp, err := http.Post(
			s.URL+"/v1/cart/lines", "application/json",
			strings.NewReader(`[{"merchandise_id":"v1","quantity":1}]`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("AddLinesOpaqueBackendFailure", func(t *testing.T) {
		cart := new(MockCartService)
		cart.On("AddToCart", mock.Anything, "cart-1", mock.Anything).
			Return(domain.Cart{}, domain.ErrCartUpdate)
		s := newServer(cart)

		req, err := http.NewRequest(
			http.MethodPost, s.URL+"/v1/cart/lines",
			strings.NewReader(`[{"merchandise_id":"v1","quantity":1}]`),
		)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Cart-ID", "cart-1")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("AddLinesSuccess", func(t *testing.T) {
		cart := new(MockCartService)
		lines := []domain.CartLineInput{{MerchandiseID: "v1", Quantity: 1}}
		cart.On("AddToCart", mock.Anything, "cart-1", lines).
			Return(domain.Cart{ID: "cart-1", TotalQuantity: 1}, nil)
		s := newServer(cart)

		req, err := http.NewRequest(
			http.MethodPost, s.URL+"/v1/cart/lines",
			strings.NewReader(`[{"merchandise_id":"v1","quantity":1}]`),
		)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Cart-ID", "cart-1")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		cart.AssertExpectations(t)
	})
}

func TestStorefrontHandler(t *testing.T) {
	newServer := func(reader *MockStorefront) *httptest.Server {
		mux := http.NewServeMux()
		httphandler.RegisterStorefront(mux, reader)
		s := httptest.NewServer(mux)
		t.Cleanup(s.Close)
		return s
	}

	t.Run("ProductNotFound", func(t *testing.T) {
		reader := new(MockStorefront)
		reader.On("GetProduct", mock.Anything, "missing").
			Return(domain.Product{}, false, nil)
		s := newServer(reader)

		resp, err := http.Get(s.URL + "/v1/products/missing")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("ProductsQueryParams", func(t *testing.T) {
		reader := new(MockStorefront)
		want := domain.ProductQuery{Query: "shirt", SortKey: "PRICE", Reverse: true}
		reader.On("GetProducts", mock.Anything, want).
			Return([]domain.Product{}, nil)
		s := newServer(reader)

		resp, err := http.Get(
			s.URL + "/v1/products?query=shirt&sort_key=PRICE&reverse=true",
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		reader.AssertExpectations(t)
	})

	t.Run("BackendFailure", func(t *testing.T) {
		reader := new(MockStorefront)
		reader.On("GetCollections", mock.Anything).
			Return([]domain.Collection(nil), &domain.BackendError{
				Status: 500, Message: "internal",
			})
		s := newServer(reader)

		resp, err := http.Get(s.URL + "/v1/collections")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})
}
