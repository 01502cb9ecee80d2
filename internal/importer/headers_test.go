package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeaderMap(t *testing.T) {
	testTable := []struct {
		name     string
		header   []string
		expected map[string]int
	}{
		{
			name:     "normalizes case and whitespace",
			header:   []string{" Brand ", "SKU", "Price Ex VAT"},
			expected: map[string]int{"brand": 1, "sku": 2, "price ex vat": 3},
		},
		{
			name:     "keeps first occurrence of duplicate headers",
			header:   []string{"Brand", "brand", "BRAND"},
			expected: map[string]int{"brand": 1},
		},
		{
			name:     "skips empty cells",
			header:   []string{"", "Brand", "  "},
			expected: map[string]int{"brand": 2},
		},
		{
			name:     "empty row",
			header:   nil,
			expected: map[string]int{},
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BuildHeaderMap(tc.header))
		})
	}
}

func TestResolveColumns(t *testing.T) {
	canonical := []string{"Brand", "SKU", "AGSK", "ProductName", "UoM", "Price Ex VAT", "Price Inc VAT"}

	canonicalCols, recognized := ResolveColumns(canonical)
	require.True(t, recognized)

	t.Run("russian synonyms resolve to the same positions", func(t *testing.T) {
		russian := []string{"Бренд", "Код", "АГСК", "Наименование", "Ед.Изм", "Цена без НДС", "Цена с НДС"}

		cols, recognized := ResolveColumns(russian)
		require.True(t, recognized)
		assert.Equal(t, canonicalCols, cols)
	})

	t.Run("mixed case synonyms resolve to the same positions", func(t *testing.T) {
		mixed := []string{"BRAND", "SkuCode", "agsk code", "Товар", "UNIT", "price exvat", "PriceIncVat"}

		cols, recognized := ResolveColumns(mixed)
		require.True(t, recognized)
		assert.Equal(t, canonicalCols, cols)
	})

	t.Run("shuffled headers resolve by name, not position", func(t *testing.T) {
		shuffled := []string{"Price Inc VAT", "Brand", "SKU", "AGSK", "ProductName", "UoM", "Price Ex VAT"}

		cols, recognized := ResolveColumns(shuffled)
		require.True(t, recognized)
		assert.Equal(t, Columns{
			Brand:       2,
			SKU:         3,
			AGSK:        4,
			Product:     5,
			UOM:         6,
			PriceExVAT:  7,
			PriceIncVAT: 1,
		}, cols)
	})

	t.Run("unrecognizable headers fall back to fixed columns 1-7", func(t *testing.T) {
		cols, recognized := ResolveColumns([]string{"Foo", "Bar", "Baz"})
		assert.False(t, recognized)
		assert.Equal(t, Columns{
			Brand:       1,
			SKU:         2,
			AGSK:        3,
			Product:     4,
			UOM:         5,
			PriceExVAT:  6,
			PriceIncVAT: 7,
		}, cols)
	})

	t.Run("partial match keeps fallbacks for the rest", func(t *testing.T) {
		cols, recognized := ResolveColumns([]string{"Mystery", "Brand"})
		assert.True(t, recognized)
		assert.Equal(t, 2, cols.Brand)
		assert.Equal(t, 2, cols.SKU)
		assert.Equal(t, 3, cols.AGSK)
	})
}
