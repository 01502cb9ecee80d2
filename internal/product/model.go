package product

type Product struct {
	ID          int      `json:"id"`
	BrandID     int      `json:"brandId"`
	BrandName   string   `json:"brandName"`
	SKUCode     *string  `json:"skuCode"`
	AGSKCode    *string  `json:"agskCode"`
	Name        *string  `json:"product"`
	UOM         *string  `json:"uom"`
	PriceExVAT  *float64 `json:"priceExVat"`
	PriceIncVAT *float64 `json:"priceIncVat"`
}

// Key is the de-duplication identity of a product. Absent sku/agsk codes are
// represented as empty strings so keys stay comparable.
type Key struct {
	BrandID  int
	SKUCode  string
	AGSKCode string
}

func (p Product) UniqueKey() Key {
	return Key{
		BrandID:  p.BrandID,
		SKUCode:  deref(p.SKUCode),
		AGSKCode: deref(p.AGSKCode),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
