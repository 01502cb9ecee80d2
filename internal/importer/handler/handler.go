package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/vetrovegor/catalog-backend/internal/apperror"
	"github.com/vetrovegor/catalog-backend/internal/handlers"
	"github.com/vetrovegor/catalog-backend/internal/importer"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockimporterhandler
type Service interface {
	ImportProducts(ctx context.Context, filename string, file io.Reader) (*importer.Result, error)
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
	router.Route("/import", func(importRouter chi.Router) {
		importRouter.Post("/products", apperror.Middleware(h.ImportProductsHandler))
	})
}

//	@Tags		import
//	@Accept		mpfd
//	@Param		file	formData	file	true	"workbook (.xlsx, .xlsm, .xltx, .xltm)"
//	@Success	200		{object}	importer.Result
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/import/products [post]
func (h *handler) ImportProductsHandler(w http.ResponseWriter, r *http.Request) error {
	file, header, err := r.FormFile("file")
	if err != nil {
		return apperror.NewAppError(fmt.Sprintf("failed to retrieve file: %s", err.Error()))
	}
	defer file.Close()

	h.logger.Info("importing products", zap.String("filename", header.Filename))

	result, err := h.service.ImportProducts(r.Context(), header.Filename, file)
	if err != nil {
		return err
	}

	render.JSON(w, r, result)

	return nil
}
