package controllers

import (
	"net/http"

	"github.com/sultumov/AllergyTrackerr/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Recipes *services.RecipeService
	Profile *services.ProfileService
}

func NewRecipeController(recipes *services.RecipeService, profile *services.ProfileService) *RecipeController {
	return &RecipeController{Recipes: recipes, Profile: profile}
}

// GET /recipes/search?q=breakfast
//
// The caller's allergen profile is applied as ingredient exclusions so every
// returned recipe is safe for them.
func (rc *RecipeController) Search(c *gin.Context) {
	uid := c.GetUint("userID")

	allergens, err := rc.Profile.GetAllergens(uid, userLocale(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recipes := rc.Recipes.Search(c.Request.Context(), c.Query("q"), allergens, allergens)
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
