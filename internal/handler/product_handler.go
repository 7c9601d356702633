package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Shubham126710/products-api/internal/models"
	"github.com/Shubham126710/products-api/internal/query"
	"github.com/Shubham126710/products-api/internal/repository"
	"github.com/Shubham126710/products-api/internal/utils"
)

// ProductHandler handles product CRUD HTTP endpoints.
type ProductHandler struct {
	products repository.ProductRepository
}

// NewProductHandler constructs a ProductHandler over any ProductRepository
// implementation.
func NewProductHandler(products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	// An absent body binds as an empty payload so the validator reports the
	// missing fields instead of a generic decode error.
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ValidationError(c, bindErrorMessages(err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	product := &models.Product{
		Name:     req.Name,
		Price:    req.Price,
		Category: models.Category(req.Category),
	}
	if err := h.products.Create(c.Request.Context(), product); err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("create product failed")
		utils.ErrorDetail(c, 500, "Failed to create product", err)
		return
	}

	utils.Success(c, 201, "Product created successfully", product)
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	q := query.ParseProductQuery(c.Request.URL.Query())
	ctx := c.Request.Context()

	products, err := h.products.Find(ctx, q)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("list products failed")
		utils.ErrorDetail(c, 500, "Failed to retrieve products", err)
		return
	}
	total, err := h.products.Count(ctx, q)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("count products failed")
		utils.ErrorDetail(c, 500, "Failed to retrieve products", err)
		return
	}

	utils.SuccessList(c, 200, products, len(products), total, q.TotalPages(total))
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			utils.Error(c, 404, "Product not found")
			return
		}
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("get product failed")
		utils.ErrorDetail(c, 500, "Failed to retrieve product", err)
		return
	}

	utils.Success(c, 200, "Product retrieved successfully", product)
}

// UpdateProduct handles PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	// Resolve the id before reading the body so unknown products answer 404
	// regardless of payload. The later write is a separate step; a concurrent
	// delete between the two wins and also yields 404.
	if _, err := h.products.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			utils.Error(c, 404, "Product not found")
			return
		}
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("load product for update failed")
		utils.ErrorDetail(c, 500, "Failed to update product", err)
		return
	}

	// An absent body is an empty patch: the write still runs and refreshes
	// updatedAt and the version.
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ValidationError(c, bindErrorMessages(err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	product, err := h.products.UpdateByID(ctx, id, &req)
	if err != nil {
		if isNotFound(err) {
			utils.Error(c, 404, "Product not found")
			return
		}
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("update product failed")
		utils.ErrorDetail(c, 500, "Failed to update product", err)
		return
	}

	utils.Success(c, 200, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	product, err := h.products.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			utils.Error(c, 404, "Product not found")
			return
		}
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("delete product failed")
		utils.ErrorDetail(c, 500, "Failed to delete product", err)
		return
	}

	utils.Success(c, 200, "Product deleted successfully", product)
}

// DeleteAllProducts handles DELETE /api/products
func (h *ProductHandler) DeleteAllProducts(c *gin.Context) {
	count, err := h.products.DeleteAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("delete all products failed")
		utils.ErrorDetail(c, 500, "Failed to delete products", err)
		return
	}

	utils.Success(c, 200, "All products deleted successfully", gin.H{"deletedCount": count})
}

// GetProductsByCategory handles GET /api/products/category/:category
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	products, err := h.products.FindByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("list products by category failed")
		utils.ErrorDetail(c, 500, "Failed to retrieve products", err)
		return
	}

	utils.SuccessCollection(c, 200, products, len(products))
}

// isNotFound reports whether err should surface as a 404. A malformed id can
// never resolve to a product, so it is answered the same way as an absent one
// rather than as a client syntax error.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrProductNotFound) || errors.Is(err, repository.ErrInvalidProductID)
}
