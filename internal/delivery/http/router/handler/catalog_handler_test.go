package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"chocoshop/internal/domain/entity"
	"chocoshop/internal/infra/cart"
	mockRepo "chocoshop/internal/mocks/repository"
	mockService "chocoshop/internal/mocks/service"
	"chocoshop/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCatalogHandler(t *testing.T) (*mockRepo.MockProductRepository, *CatalogHandler) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockService.NewMockImageStore(t)
	logger := newDiscardLogger()

	catalogUC := impl.NewCatalogService(impl.CatalogServiceParams{
		ProductRepo: productRepo,
		ImageStore:  imageStore,
		Logger:      logger,
	})
	cartUC := impl.NewCartService(impl.CartServiceParams{
		CartStore:   cart.NewMemoryStore(),
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return productRepo, NewCatalogHandler(catalogUC, cartUC, logger)
}

func TestCatalogHandler_Landing(t *testing.T) {
	_, h := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/chocoshop", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Landing(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chocolate")
	assert.Contains(t, rec.Body.String(), "statues")
}

func TestCatalogHandler_Search_FormQuery(t *testing.T) {
	productRepo, h := newTestCatalogHandler(t)

	productRepo.EXPECT().
		ListAll(context.Background()).
		Return([]*entity.Product{
			{Name: "Dark Bar", Category: entity.CategoryChocolate, Keywords: "rich dark cocoa bar"},
			{Name: "Gummy Mix", Category: entity.CategoryCandies, Keywords: "chewy gummy fruit mix"},
		}, nil)

	form := url.Values{"query": {"coco"}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dark Bar")
	assert.NotContains(t, rec.Body.String(), "Gummy Mix")
}

func TestCatalogHandler_Search_SearchFieldAlias(t *testing.T) {
	productRepo, h := newTestCatalogHandler(t)

	productRepo.EXPECT().
		ListAll(context.Background()).
		Return([]*entity.Product{
			{Name: "Dipped Strawberry", Category: entity.CategoryStrawberries, Keywords: "fresh strawberry dipped"},
		}, nil)

	// The storefront form posts the terms under "search", not "query".
	form := url.Values{"search": {"straw"}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dipped Strawberry")
}

func TestCatalogHandler_GetProduct_AddToCartIssuesCookie(t *testing.T) {
	productRepo, h := newTestCatalogHandler(t)

	product := &entity.Product{Name: "Dark Bar", Category: entity.CategoryChocolate, Price: 5.0}
	productRepo.EXPECT().
		FindBySlug(context.Background(), "dark_bar").
		Return(product, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/product/dark_bar?add=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("dark_bar")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product added to cart")

	// A visitor without a cart cookie gets one issued on first add.
	var issued bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cartCookieName && cookie.Value != "" {
			issued = true
		}
	}
	assert.True(t, issued)
}

func TestCatalogHandler_GetProduct_ReusesExistingCart(t *testing.T) {
	productRepo, h := newTestCatalogHandler(t)

	product := &entity.Product{Name: "Dark Bar", Category: entity.CategoryChocolate, Price: 5.0}
	productRepo.EXPECT().
		FindBySlug(context.Background(), "dark_bar").
		Return(product, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/product/dark_bar?add=true", nil)
	req.AddCookie(&http.Cookie{Name: cartCookieName, Value: "existing-cart"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("dark_bar")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// No new cookie when the request already carries one.
	assert.Empty(t, rec.Result().Cookies())
}
