package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"chocoshop/internal/delivery/http/response"
	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchRequest is the keyword search payload. The storefront form posts
// the terms under "search"; "query" is accepted as an alias for API clients.
type SearchRequest struct {
	Search string `json:"search" form:"search"`
	Query  string `json:"query" form:"query"`
}

func (r SearchRequest) terms() string {
	if r.Search != "" {
		return r.Search
	}

	return r.Query
}

// CatalogHandler holds dependencies for catalog browsing and ingestion.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	cartUC    usecase.CartUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase, cartUC usecase.CartUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		cartUC:    cartUC,
		logger:    logger,
	}
}

// Landing serves the storefront landing payload.
func (h *CatalogHandler) Landing(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"store":      "Chocoshop",
		"categories": entity.Categories(),
	}, "Welcome to Chocoshop")
}

// ListProducts returns the catalog, filtered to one category when the
// query parameter is present.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	category := c.QueryParam("category")

	products, err := h.catalogUC.ListProducts(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns one product by slug. With ?add=true the stored record
// is also appended to the caller's cart.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	slug := c.Param("slug")

	if c.QueryParam("add") == "true" {
		cartID := ensureCartID(c)
		product, err := h.cartUC.AddProduct(c.Request().Context(), cartID, slug)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, product, "Product added to cart")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Search runs the keyword search over the catalog.
func (h *CatalogHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	products, err := h.catalogUC.Search(c.Request().Context(), req.terms())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// DescribeAddForm returns the ingestion form descriptor so clients can
// render the same fields the web form carries.
func (h *CatalogHandler) DescribeAddForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"fields":     []string{"name", "category", "price", "weight", "description", "keywords", "image"},
		"categories": entity.Categories(),
	}, "")
}

// AddProduct ingests a new product from a multipart form. The manager must
// already be authenticated; the route is guarded by the session middleware.
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	name := c.FormValue("name")
	category := c.FormValue("category")
	description := c.FormValue("description")
	keywords := c.FormValue("keywords")

	price, err := parseOptionalFloat(c.FormValue("price"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Price must be a number")
	}
	weight, err := parseOptionalFloat(c.FormValue("weight"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Weight must be a number")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return errors.WithStack(domainerrors.ErrImageRequired)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	output, err := h.catalogUC.AddProduct(c.Request().Context(), &usecase.AddProductInput{
		Name:             name,
		Category:         category,
		Price:            price,
		Weight:           weight,
		Description:      description,
		Keywords:         keywords,
		ImageContentType: fileHeader.Header.Get("Content-Type"),
		Image:            file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Product, "Product added successfully")
}

func parseOptionalFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}
