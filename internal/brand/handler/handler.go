package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vetrovegor/catalog-backend/internal/apperror"
	"github.com/vetrovegor/catalog-backend/internal/brand"
	"github.com/vetrovegor/catalog-backend/internal/handlers"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockbrandhandler
type Service interface {
	GetAll(ctx context.Context) ([]brand.Brand, error)
	GetByID(ctx context.Context, id int) (*brand.Brand, error)
	Create(ctx context.Context, name string) (*brand.Brand, error)
	Update(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/brands", func(brandRouter chi.Router) {
		brandRouter.Get("/", apperror.Middleware(h.GetAllHandler))
		brandRouter.Get("/{id}", apperror.Middleware(h.GetByIDHandler))
		brandRouter.Post("/", apperror.Middleware(h.CreateHandler))
		brandRouter.Put("/{id}", apperror.Middleware(h.UpdateHandler))
		brandRouter.Delete("/{id}", apperror.Middleware(h.DeleteHandler))
	})
}

//	@Tags		brands
//	@Success	200		{array}		brand.Brand
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/brands [get]
func (h *handler) GetAllHandler(w http.ResponseWriter, r *http.Request) error {
	brands, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, brands)

	return nil
}

//	@Tags		brands
//	@Param		id	path	int	true	"brand id"
//	@Success	200			{object}	brand.Brand
//	@Failure	400,404,500	{object}	apperror.AppError
//	@Router		/brands/{id} [get]
func (h *handler) GetByIDHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := parseIDParam(r)
	if err != nil {
		return err
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, b)

	return nil
}

//	@Tags		brands
//	@Param		request	body		BrandRequest	true	"request body"
//	@Success	201		{object}	brand.Brand
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/brands [post]
func (h *handler) CreateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto BrandRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdBrand, err := h.service.Create(r.Context(), dto.Brand)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, createdBrand)

	return nil
}

//	@Tags		brands
//	@Param		id		path	int				true	"brand id"
//	@Param		request	body	BrandRequest	true	"request body"
//	@Success	204
//	@Failure	400,404,500	{object}	apperror.AppError
//	@Router		/brands/{id} [put]
func (h *handler) UpdateHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := parseIDParam(r)
	if err != nil {
		return err
	}

	var dto BrandRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := h.service.Update(r.Context(), id, dto.Brand); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}

//	@Tags		brands
//	@Param		id	path	int	true	"brand id"
//	@Success	204
//	@Failure	400,404,500	{object}	apperror.AppError
//	@Router		/brands/{id} [delete]
func (h *handler) DeleteHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := parseIDParam(r)
	if err != nil {
		return err
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}

func parseIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewAppError("id must be an integer")
	}

	return id, nil
}
