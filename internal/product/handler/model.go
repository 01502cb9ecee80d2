package handler

import "github.com/vetrovegor/catalog-backend/internal/product"

type ProductRequest struct {
	BrandID     int      `json:"brandId" validate:"required,gt=0"`
	SKUCode     *string  `json:"skuCode"`
	AGSKCode    *string  `json:"agskCode"`
	Product     *string  `json:"product"`
	UOM         *string  `json:"uom"`
	PriceExVAT  *float64 `json:"priceExVat"`
	PriceIncVAT *float64 `json:"priceIncVat"`
}

func (pr *ProductRequest) ToDomain() *product.Product {
	return &product.Product{
		BrandID:     pr.BrandID,
		SKUCode:     pr.SKUCode,
		AGSKCode:    pr.AGSKCode,
		Name:        pr.Product,
		UOM:         pr.UOM,
		PriceExVAT:  pr.PriceExVAT,
		PriceIncVAT: pr.PriceIncVAT,
	}
}

type ProductUpdateRequest struct {
	ID int `json:"id" validate:"required,gt=0"`
	ProductRequest
}

func (pr *ProductUpdateRequest) ToDomain() *product.Product {
	p := pr.ProductRequest.ToDomain()
	p.ID = pr.ID
	return p
}
