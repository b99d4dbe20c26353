package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sultumov/AllergyTrackerr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFixture = `{
  "categories": [
    {
      "id": "food",
      "name": "Food",
      "allergens": [
        {
          "id": "milk",
          "name": "Milk",
          "description": "Cow's milk allergy",
          "symptoms": ["Hives"],
          "avoidanceRecommendations": ["Avoid dairy"]
        },
        {
          "id": "peanut",
          "name": "Peanut",
          "scientificName": "Arachis hypogaea",
          "symptoms": ["Anaphylaxis"]
        }
      ]
    },
    {
      "id": "pollen",
      "name": "Pollen",
      "allergens": [
        {"id": "birch_pollen", "name": "Birch pollen", "scientificName": "Betula"}
      ]
    }
  ]
}`

func writeCatalogFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "allergens.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogLoadsAsset(t *testing.T) {
	svc := NewCatalogService(writeCatalogFixture(t, catalogFixture))

	all := svc.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Milk", all[0].Name)
	assert.Equal(t, models.CategoryFood, all[0].Category)
	assert.Equal(t, []string{"Avoid dairy"}, all[0].Avoidance)
	// Missing list fields come back empty, not nil.
	assert.NotNil(t, all[1].Avoidance)
}

func TestCatalogByCategory(t *testing.T) {
	svc := NewCatalogService(writeCatalogFixture(t, catalogFixture))

	food := svc.ByCategory(models.CategoryFood)
	assert.Len(t, food, 2)
	pollen := svc.ByCategory(models.CategoryPollen)
	require.Len(t, pollen, 1)
	assert.Equal(t, "birch_pollen", pollen[0].ID)
	assert.Empty(t, svc.ByCategory(models.CategoryDrug))
}

func TestCatalogSearchMatchesScientificName(t *testing.T) {
	svc := NewCatalogService(writeCatalogFixture(t, catalogFixture))

	hits := svc.Search("arachis")
	require.Len(t, hits, 1)
	assert.Equal(t, "peanut", hits[0].ID)

	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.Search("latex"))
}

func TestCatalogByID(t *testing.T) {
	svc := NewCatalogService(writeCatalogFixture(t, catalogFixture))

	milk := svc.ByID("milk")
	require.NotNil(t, milk)
	assert.Equal(t, "Milk", milk.Name)
	assert.Nil(t, svc.ByID("unknown"))
}

func TestCatalogCategoriesFirstSeenOrder(t *testing.T) {
	svc := NewCatalogService(writeCatalogFixture(t, catalogFixture))
	assert.Equal(t, []models.AllergenCategory{models.CategoryFood, models.CategoryPollen}, svc.Categories())
}

func TestCatalogFallsBackOnMissingAsset(t *testing.T) {
	svc := NewCatalogService(filepath.Join(t.TempDir(), "does-not-exist.json"))

	all := svc.All()
	require.NotEmpty(t, all)
	assert.NotNil(t, svc.ByID("milk"))
	assert.NotNil(t, svc.ByID("penicillin"))
}

func TestCatalogFallsBackOnMalformedAsset(t *testing.T) {
	svc := NewCatalogService(writeCatalogFixture(t, "{broken"))
	assert.NotEmpty(t, svc.All())
}
