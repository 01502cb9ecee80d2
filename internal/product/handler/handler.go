package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vetrovegor/catalog-backend/internal/apperror"
	"github.com/vetrovegor/catalog-backend/internal/handlers"
	"github.com/vetrovegor/catalog-backend/internal/product"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockproducthandler
type Service interface {
	GetAll(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id int) (*product.Product, error)
	Search(ctx context.Context, q string) ([]product.Product, error)
	Create(ctx context.Context, data product.Product) (*product.Product, error)
	Update(ctx context.Context, data product.Product) error
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
	router.Route("/products", func(productRouter chi.Router) {
		productRouter.Get("/", apperror.Middleware(h.GetAllHandler))
		// registered before /{id} so "search" is not parsed as an id
		productRouter.Get("/search", apperror.Middleware(h.SearchHandler))
		productRouter.Get("/{id}", apperror.Middleware(h.GetByIDHandler))
		productRouter.Post("/", apperror.Middleware(h.CreateHandler))
		productRouter.Put("/{id}", apperror.Middleware(h.UpdateHandler))
		productRouter.Delete("/{id}", apperror.Middleware(h.DeleteHandler))
	})
}

//	@Tags		products
//	@Success	200		{array}		product.Product
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/products [get]
func (h *handler) GetAllHandler(w http.ResponseWriter, r *http.Request) error {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, products)

	return nil
}

//	@Tags		products
//	@Param		id	path	int	true	"product id"
//	@Success	200			{object}	product.Product
//	@Failure	400,404,500	{object}	apperror.AppError
//	@Router		/products/{id} [get]
func (h *handler) GetByIDHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := parseIDParam(r)
	if err != nil {
		return err
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, p)

	return nil
}

//	@Tags		products
//	@Param		q	query	string	true	"substring matched against sku, agsk and product name"
//	@Success	200		{array}		product.Product
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/products/search [get]
func (h *handler) SearchHandler(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query().Get("q")
	if q == "" {
		return apperror.NewAppError("query parameter q is required")
	}

	products, err := h.service.Search(r.Context(), q)
	if err != nil {
		return err
	}

	render.JSON(w, r, products)

	return nil
}

//	@Tags		products
//	@Param		request	body		ProductRequest	true	"request body"
//	@Success	201		{object}	product.Product
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/products [post]
func (h *handler) CreateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ProductRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdProduct, err := h.service.Create(r.Context(), *dto.ToDomain())
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, createdProduct)

	return nil
}

//	@Tags		products
//	@Param		id		path	int						true	"product id"
//	@Param		request	body	ProductUpdateRequest	true	"request body"
//	@Success	204
//	@Failure	400,404,500	{object}	apperror.AppError
//	@Router		/products/{id} [put]
func (h *handler) UpdateHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := parseIDParam(r)
	if err != nil {
		return err
	}

	var dto ProductUpdateRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if id != dto.ID {
		return apperror.NewAppError("id mismatch")
	}

	if err := h.service.Update(r.Context(), *dto.ToDomain()); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}

//	@Tags		products
//	@Param		id	path	int	true	"product id"
//	@Success	204
//	@Failure	400,404,500	{object}	apperror.AppError
//	@Router		/products/{id} [delete]
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
