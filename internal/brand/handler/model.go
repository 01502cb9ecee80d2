package handler

type BrandRequest struct {
	Brand string `json:"brand" validate:"required"`
}
