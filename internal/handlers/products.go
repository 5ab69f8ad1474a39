package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/catalog"
	"backend/internal/settings"
)

// GET /api/products
func GetProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, svc.ListAll())
	}
}

// GET /api/products/featured
//
// Products flagged featured come first; when fewer than featuredCount are
// flagged, the list is filled with the remaining products in store order.
func GetFeaturedProducts(svc *catalog.Service, siteSettings *settings.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/featured"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, svc.ListFeatured(siteSettings.FeaturedCount()))
	}
}

// GET /api/products/:slug — slug lookup with numeric-id fallback.
func GetProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:slug"
		defer handlePanic(c, route)

		product, err := svc.GetBySlugOrID(c.Param("slug"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				respondWithError(c, http.StatusNotFound, route, "Product not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "Something went wrong!")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
