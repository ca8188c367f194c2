package ports

import (
	"context"

	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
)

// SalesReportGenerator puerto para generar el reporte PDF de ventas.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, sales []*entity.Sale) ([]byte, error)
}
