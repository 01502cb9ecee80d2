package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vetrovegor/catalog-backend/internal/apperror"
	"github.com/vetrovegor/catalog-backend/internal/brand"
	"github.com/vetrovegor/catalog-backend/internal/importer"
	"github.com/vetrovegor/catalog-backend/internal/product"
	"github.com/vetrovegor/catalog-backend/pkg/transactor"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrUnsupportedFile = apperror.NewAppError("please upload an .xlsx file")

var allowedExtensions = map[string]struct{}{
	".xlsx": {},
	".xlsm": {},
	".xltx": {},
	".xltm": {},
}

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockimporterservice
type BrandRepository interface {
	GetAll(ctx context.Context) ([]brand.Brand, error)
	Create(ctx context.Context, name string) (*brand.Brand, error)
}

type ProductRepository interface {
	GetAllKeys(ctx context.Context) ([]product.Key, error)
	Create(ctx context.Context, data product.Product) (*product.Product, error)
}

type service struct {
	brandRepository   BrandRepository
	productRepository ProductRepository
	txManager         transactor.Manager
	logger            *zap.Logger
}

func New(
	brandRepository BrandRepository,
	productRepository ProductRepository,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		brandRepository:   brandRepository,
		productRepository: productRepository,
		txManager:         txManager,
		logger:            logger,
	}
}

// ImportProducts parses the uploaded workbook and upserts its rows. Every
// worksheet is processed as an independent batch with its own header layout.
// All changes of a run commit atomically at the end; data-quality problems
// degrade to skipped rows or nil fields and never abort the run.
func (s *service) ImportProducts(ctx context.Context, filename string, file io.Reader) (*importer.Result, error) {
	if _, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]; !ok {
		return nil, ErrUnsupportedFile
	}

	wb, err := excelize.OpenReader(file)
	if err != nil {
		s.logger.Error("failed to open workbook", zap.Error(err))
		return nil, apperror.NewAppError("failed to open workbook")
	}
	defer wb.Close()

	log := s.logger.With(
		zap.String("import_id", uuid.NewString()),
		zap.String("filename", filename),
	)

	var result *importer.Result

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		res, err := s.runImport(ctx, log, wb)
		if err != nil {
			return err
		}

		result = res

		return nil
	})
	if err != nil {
		log.Error("import failed, nothing committed", zap.Error(err))
		return nil, err
	}

	log.Info("import finished",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("sheets", len(result.Sheets)),
	)

	return result, nil
}

func (s *service) runImport(ctx context.Context, log *zap.Logger, wb *excelize.File) (*importer.Result, error) {
	// Working sets seeded once per run: brand name -> id and the stored
	// de-duplication keys. Rows created during the run extend them, so later
	// rows and sheets see earlier ones without per-row queries.
	brands, err := s.brandRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	brandIDs := make(map[string]int, len(brands))
	for _, b := range brands {
		if _, ok := brandIDs[b.Name]; !ok {
			brandIDs[b.Name] = b.ID
		}
	}

	storedKeys, err := s.productRepository.GetAllKeys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make(map[product.Key]struct{}, len(storedKeys))
	for _, k := range storedKeys {
		keys[k] = struct{}{}
	}

	result := &importer.Result{Sheets: make([]importer.SheetResult, 0)}

	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil || len(rows) == 0 {
			result.Sheets = append(result.Sheets, importer.SheetResult{Sheet: sheet, Reason: "empty"})
			continue
		}

		cols, recognized := importer.ResolveColumns(rows[0])
		if !recognized {
			log.Warn("no recognizable headers, assuming default column order",
				zap.String("sheet", sheet),
			)
		}

		var seen, created, skipped int

		for _, row := range rows[1:] {
			seen++

			brandName := importer.CellString(row, cols.Brand)
			if brandName == nil {
				skipped++
				continue
			}

			brandID, ok := brandIDs[*brandName]
			if !ok {
				b, err := s.brandRepository.Create(ctx, *brandName)
				if err != nil {
					return nil, err
				}

				brandIDs[b.Name] = b.ID
				brandID = b.ID
			}

			data := product.Product{
				BrandID:     brandID,
				SKUCode:     importer.CellString(row, cols.SKU),
				AGSKCode:    importer.CellString(row, cols.AGSK),
				Name:        importer.CellString(row, cols.Product),
				UOM:         importer.CellString(row, cols.UOM),
				PriceExVAT:  importer.CellFloat(row, cols.PriceExVAT),
				PriceIncVAT: importer.CellFloat(row, cols.PriceIncVAT),
			}

			key := data.UniqueKey()
			if _, exists := keys[key]; exists {
				skipped++
				continue
			}

			if _, err := s.productRepository.Create(ctx, data); err != nil {
				return nil, err
			}

			keys[key] = struct{}{}
			created++
		}

		result.Created += created
		result.Skipped += skipped
		result.Sheets = append(result.Sheets, importer.SheetResult{
			Sheet:   sheet,
			Rows:    seen,
			Created: created,
			Skipped: skipped,
		})
	}

	return result, nil
}
