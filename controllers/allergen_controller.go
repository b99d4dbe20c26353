package controllers

import (
	"net/http"

	"github.com/sultumov/AllergyTrackerr/models"
	"github.com/sultumov/AllergyTrackerr/services"

	"github.com/gin-gonic/gin"
)

type AllergenController struct {
	Catalog     *services.CatalogService
	Profile     *services.ProfileService
	PubMed      *services.PubMedService
	Wikipedia   *services.WikipediaService
	Translation *services.TranslationService
}

func NewAllergenController(
	catalog *services.CatalogService,
	profile *services.ProfileService,
	pubmed *services.PubMedService,
	wikipedia *services.WikipediaService,
	translation *services.TranslationService,
) *AllergenController {
	return &AllergenController{
		Catalog:     catalog,
		Profile:     profile,
		PubMed:      pubmed,
		Wikipedia:   wikipedia,
		Translation: translation,
	}
}

// GET /allergens?category=food&q=milk
func (ac *AllergenController) List(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, gin.H{"allergens": ac.Catalog.Search(q)})
		return
	}
	if cat := c.Query("category"); cat != "" {
		category := models.ParseAllergenCategory(cat)
		c.JSON(http.StatusOK, gin.H{"allergens": ac.Catalog.ByCategory(category)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allergens": ac.Catalog.All()})
}

// GET /allergens/categories
func (ac *AllergenController) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": ac.Catalog.Categories()})
}

// GET /allergens/:id
func (ac *AllergenController) Get(c *gin.Context) {
	allergen := ac.Catalog.ByID(c.Param("id"))
	if allergen == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "allergen not found"})
		return
	}
	c.JSON(http.StatusOK, allergen)
}

// GET /allergens/:id/research
func (ac *AllergenController) Research(c *gin.Context) {
	allergen := ac.Catalog.ByID(c.Param("id"))
	if allergen == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "allergen not found"})
		return
	}

	query := allergen.ScientificName
	if query == "" {
		query = allergen.Name
	}
	article, err := ac.PubMed.SearchAllergen(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, article)
}

// GET /allergens/:id/encyclopedia?lang=ru
func (ac *AllergenController) Encyclopedia(c *gin.Context) {
	allergen := ac.Catalog.ByID(c.Param("id"))
	if allergen == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "allergen not found"})
		return
	}

	extract, err := ac.Wikipedia.Extract(c.Request.Context(), allergen.Name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	lang := c.Query("lang")
	if lang != "" && lang != "en" {
		// Translation falls back to the English text when unavailable.
		extract = ac.Translation.Translate(c.Request.Context(), []string{extract}, "en", lang)[0]
	}

	c.JSON(http.StatusOK, gin.H{"title": allergen.Name, "extract": extract})
}

// GET /user/allergens
func (ac *AllergenController) ListUserAllergens(c *gin.Context) {
	uid := c.GetUint("userID")
	allergens, err := ac.Profile.GetAllergens(uid, userLocale(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allergens": allergens})
}

type allergenInput struct {
	Allergen string `json:"allergen" binding:"required"`
}

// POST /user/allergens
func (ac *AllergenController) AddUserAllergen(c *gin.Context) {
	uid := c.GetUint("userID")

	var input allergenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allergens, err := ac.Profile.AddAllergen(uid, userLocale(c), input.Allergen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allergens": allergens})
}

// DELETE /user/allergens/:name
func (ac *AllergenController) RemoveUserAllergen(c *gin.Context) {
	uid := c.GetUint("userID")

	allergens, err := ac.Profile.RemoveAllergen(uid, userLocale(c), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allergens": allergens})
}
