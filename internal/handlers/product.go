// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/subscription-index/internal/i18n"
	"github.com/javajoker/subscription-index/internal/models"
	"github.com/javajoker/subscription-index/internal/services"
	"github.com/javajoker/subscription-index/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	catalogService *services.CatalogService
}

func NewProductHandler(productService *services.ProductService, catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		catalogService: catalogService,
	}
}

// searchParamsFromQuery reads the product filters shared by the list
// endpoints.
func searchParamsFromQuery(c *gin.Context) services.ProductSearchParams {
	params := services.ProductSearchParams{
		HomeCountry: c.Query("home"),
		Search:      strings.TrimSpace(c.Query("search")),
		Country:     c.Query("country"),
		SortBy:      models.SortKey(c.Query("sort")),
	}

	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				params.Tags = append(params.Tags, tag)
			}
		}
	}

	return params
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	pagination := utils.GetPaginationParams(c)

	list, err := h.productService.SearchProducts(searchParamsFromQuery(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	message := i18n.T(lang, i18n.KeySearchResultsFound, len(list.Products))
	if len(list.Products) == 0 {
		message = i18n.T(lang, i18n.KeySearchNoResults)
	}

	result := utils.Paginate(list.Products, pagination)
	utils.PaginatedResponse(c, result, gin.H{
		"home_country":    list.HomeCountry,
		"filters":         list.Filters,
		"catalog_version": h.catalogVersion(),
		"message":         message,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id, c.Query("home"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /countries
func (h *ProductHandler) GetCountries(c *gin.Context) {
	countries, err := h.productService.GetCountries()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"countries": countries,
	})
}

// GET /home-countries
func (h *ProductHandler) GetHomeCountries(c *gin.Context) {
	countries, err := h.productService.GetHomeCountries()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"home_countries": countries,
		"default":        h.productService.DefaultHomeCountry(),
	})
}

// GET /tags
func (h *ProductHandler) GetTags(c *gin.Context) {
	tags, err := h.productService.GetTags()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"tags": tags,
	})
}

func (h *ProductHandler) catalogVersion() string {
	snap, err := h.catalogService.Snapshot()
	if err != nil {
		return ""
	}
	return snap.Version
}
