// Package importer resolves heterogeneous spreadsheet layouts into catalog
// rows. Header cells are matched against English and Russian synonyms; sheets
// without recognizable headers fall back to a fixed column order.
package importer

import "strings"

var (
	brandHeaders    = []string{"brand", "brandname", "бренд", "бренд наименование"}
	skuHeaders      = []string{"sku", "skucode", "код", "код sku"}
	agskHeaders     = []string{"agsk", "agskcode", "agsk code", "агск"}
	productHeaders  = []string{"product", "productname", "наименование", "товар"}
	uomHeaders      = []string{"uom", "uom.", "unit", "ед.изм", "ед.изм.", "единица"}
	priceExHeaders  = []string{"priceexvat", "price ex vat", "price exvat", "цена без ндс", "цена безндс"}
	priceIncHeaders = []string{"priceincvat", "price inc vat", "price incvat", "цена с ндс", "цена сндс"}
)

// Columns holds the resolved 1-based column position of every logical field.
type Columns struct {
	Brand       int
	SKU         int
	AGSK        int
	Product     int
	UOM         int
	PriceExVAT  int
	PriceIncVAT int
}

// BuildHeaderMap maps normalized (trimmed, lower-cased) header text to its
// 1-based column position, keeping the first occurrence of duplicate headers.
func BuildHeaderMap(header []string) map[string]int {
	out := make(map[string]int)
	for i, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		if key == "" {
			continue
		}
		if _, ok := out[key]; !ok {
			out[key] = i + 1
		}
	}
	return out
}

func pickColumn(headerMap map[string]int, candidates []string, fallback int) (int, bool) {
	for _, c := range candidates {
		if col, ok := headerMap[c]; ok {
			return col, true
		}
	}
	return fallback, false
}

// ResolveColumns resolves every logical field against the sheet's header row.
// Fields without a matching synonym use fixed positions 1 through 7. The second
// return value reports whether at least one header was recognized.
func ResolveColumns(header []string) (Columns, bool) {
	headerMap := BuildHeaderMap(header)

	var cols Columns
	var recognized bool

	for _, field := range []struct {
		dst        *int
		candidates []string
		fallback   int
	}{
		{&cols.Brand, brandHeaders, 1},
		{&cols.SKU, skuHeaders, 2},
		{&cols.AGSK, agskHeaders, 3},
		{&cols.Product, productHeaders, 4},
		{&cols.UOM, uomHeaders, 5},
		{&cols.PriceExVAT, priceExHeaders, 6},
		{&cols.PriceIncVAT, priceIncHeaders, 7},
	} {
		col, matched := pickColumn(headerMap, field.candidates, field.fallback)
		*field.dst = col
		recognized = recognized || matched
	}

	return cols, recognized
}
