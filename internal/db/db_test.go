package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/drip-agent/internal/types"
)

func TestSeedArchetypes(t *testing.T) {
	assert.Len(t, SeedArchetypes, 7)

	seen := map[string]bool{}
	for _, a := range SeedArchetypes {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Keywords, "archetype %s has no keywords", a.ID)
		assert.False(t, seen[a.ID], "duplicate archetype id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestSeedProducts(t *testing.T) {
	archetypeIDs := map[string]bool{}
	for _, a := range SeedArchetypes {
		archetypeIDs[a.ID] = true
	}

	seen := map[string]bool{}
	for _, p := range SeedProducts {
		assert.NotEmpty(t, p.ID)
		assert.Greater(t, p.Price, 0.0, "product %s has no price", p.ID)
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.StyleArchetypes, "product %s has no archetypes", p.ID)
		for _, tag := range p.StyleArchetypes {
			assert.True(t, archetypeIDs[tag], "product %s references unknown archetype %s", p.ID, tag)
		}

		switch p.Gender {
		case "male", "female", "unisex":
		default:
			t.Errorf("product %s has invalid gender %q", p.ID, p.Gender)
		}
	}
}

func TestSeedProductsCoverAllCategories(t *testing.T) {
	categories := map[string]bool{}
	for _, p := range SeedProducts {
		categories[p.Category] = true
	}
	for _, want := range []string{"Outerwear", "Tops", "Bottoms", "Footwear"} {
		assert.True(t, categories[want], "no seed products in category %s", want)
	}
}

func TestJobUpdatePartialFields(t *testing.T) {
	status := types.StatusScraping
	progress := 10
	update := JobUpdate{Status: &status, Progress: &progress}

	assert.Equal(t, types.StatusScraping, *update.Status)
	assert.Equal(t, 10, *update.Progress)
	assert.Nil(t, update.Error)
	assert.Nil(t, update.LookbookID)
}
