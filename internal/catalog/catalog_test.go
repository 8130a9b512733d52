package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

func loadEmbedded(t *testing.T) Catalog {
	t.Helper()
	c, err := LoadDefault("")
	require.NoError(t, err)
	return c
}

func TestEmbeddedCatalog_Loads(t *testing.T) {
	c := loadEmbedded(t)

	all := c.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "amuleto_sorte", all[0].ID, "file order is preserved")
}

func TestGetItemByID(t *testing.T) {
	c := loadEmbedded(t)

	t.Run("found", func(t *testing.T) {
		item, err := c.GetItemByID("amuleto_sorte")
		require.NoError(t, err)
		assert.Equal(t, "Amuleto da Sorte", item.Name)
		assert.Equal(t, int64(5000), item.Price)
		assert.Equal(t, domain.CategoryBoost, item.Category)
		assert.Equal(t, domain.EffectCasinoLuck, item.Effect)
		assert.Equal(t, int64(3600000), item.DurationMs)
		assert.Equal(t, int64(86400000), item.CooldownMs)
	})

	t.Run("missing", func(t *testing.T) {
		item, err := c.GetItemByID("nao_existe")
		assert.Nil(t, item)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("returned item is a copy", func(t *testing.T) {
		item, err := c.GetItemByID("picareta")
		require.NoError(t, err)
		item.Price = 1

		again, err := c.GetItemByID("picareta")
		require.NoError(t, err)
		assert.Equal(t, int64(1200), again.Price)
	})
}

func TestItemExists(t *testing.T) {
	c := loadEmbedded(t)
	assert.True(t, c.ItemExists("vara_pesca"))
	assert.False(t, c.ItemExists("VARA_PESCA"))
	assert.False(t, c.ItemExists(""))
}

func TestGetItemsByCategory(t *testing.T) {
	c := loadEmbedded(t)

	t.Run("sorted by price", func(t *testing.T) {
		tools, err := c.GetItemsByCategory(domain.CategoryTool)
		require.NoError(t, err)
		require.Len(t, tools, 2)
		assert.Equal(t, "vara_pesca", tools[0].ID)
		assert.Equal(t, "picareta", tools[1].ID)
	})

	t.Run("every item lands in its category", func(t *testing.T) {
		total := 0
		for _, cat := range domain.ValidCategories {
			items, err := c.GetItemsByCategory(cat)
			require.NoError(t, err)
			for _, it := range items {
				assert.Equal(t, cat, it.Category)
			}
			total += len(items)
		}
		assert.Equal(t, len(c.All()), total)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := c.GetItemsByCategory("weapons")
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	})
}

func TestLoader_RejectsInvalidFiles(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{
			name:     "schema violation on category",
			data:     `{"version":"1","items":[{"id":"x","name":"X","price":1,"category":"weapon"}]}`,
			errorMsg: "schema validation failed",
		},
		{
			name:     "unknown field",
			data:     `{"version":"1","items":[{"id":"x","name":"X","price":1,"category":"tool","color":"red"}]}`,
			errorMsg: "schema validation failed",
		},
		{
			name:     "empty items",
			data:     `{"version":"1","items":[]}`,
			errorMsg: "schema validation failed",
		},
		{
			name: "duplicate ids",
			data: `{"version":"1","items":[
				{"id":"x","name":"X","price":1,"category":"tool"},
				{"id":"x","name":"Y","price":2,"category":"tool"}]}`,
			errorMsg: domain.ErrMsgDuplicateItemID,
		},
		{
			name:     "duration without effect",
			data:     `{"version":"1","items":[{"id":"x","name":"X","price":1,"category":"boost","duration_ms":10}]}`,
			errorMsg: "duration but no effect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Parse([]byte(tt.data), "test.json")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestLoader_Validate(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	assert.ErrorIs(t, l.Validate(nil), ErrInvalidConfig)
	assert.ErrorIs(t, l.Validate(&Config{}), ErrInvalidConfig)
	assert.ErrorIs(t, l.Validate(&Config{Items: []domain.Item{{ID: "a", Name: "A", Price: -1, Category: domain.CategoryTool}}}), ErrInvalidConfig)
}

func TestLoadDefault_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	data := `{"version":"2","items":[{"id":"moeda","name":"Moeda","price":10,"category":"collectible","buyable":true}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadDefault(path)
	require.NoError(t, err)
	assert.True(t, c.ItemExists("moeda"))
	assert.False(t, c.ItemExists("amuleto_sorte"))

	_, err = LoadDefault(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
