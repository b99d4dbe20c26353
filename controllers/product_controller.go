package controllers

import (
	"net/http"

	"github.com/sultumov/AllergyTrackerr/locales"
	"github.com/sultumov/AllergyTrackerr/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *services.ProductService
	Recent   *services.RecentProductsService
	Profile  *services.ProfileService
}

func NewProductController(products *services.ProductService, recent *services.RecentProductsService, profile *services.ProfileService) *ProductController {
	return &ProductController{Products: products, Recent: recent, Profile: profile}
}

// userLocale resolves the caller's preferred locale for default allergens.
func userLocale(c *gin.Context) string {
	email := c.GetString("email")
	user, err := services.FindUserByEmail(email)
	if err != nil || user.Locale == "" {
		return locales.DefaultLocale
	}
	return user.Locale
}

// GET /products/scan/:barcode
func (pc *ProductController) Scan(c *gin.Context) {
	uid := c.GetUint("userID")
	barcode := c.Param("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode is required"})
		return
	}

	allergens, err := pc.Profile.GetAllergens(uid, userLocale(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := pc.Products.Resolve(c.Request.Context(), uid, barcode, allergens)
	c.JSON(http.StatusOK, result)
}

// GET /products/recent
func (pc *ProductController) ListRecent(c *gin.Context) {
	uid := c.GetUint("userID")
	c.JSON(http.StatusOK, gin.H{"products": pc.Recent.List(uid)})
}

// GET /products/search?q=...
func (pc *ProductController) Search(c *gin.Context) {
	uid := c.GetUint("userID")
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": pc.Recent.Search(uid, q)})
}

// GET /products/safe?allergen=milk
func (pc *ProductController) SafeWithoutAllergen(c *gin.Context) {
	uid := c.GetUint("userID")
	allergen := c.Query("allergen")
	if allergen == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "allergen is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": pc.Recent.WithoutAllergen(uid, allergen)})
}
