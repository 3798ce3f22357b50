package repository

import (
	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

type ExportRepository interface {
	// Export writes the report to <outputDir>/<filename>.<ext> and returns the absolute path.
	// The rendered console table is used by the plain text export.
	Export(format types.OutputFormat, report entity.CostReport, table, filename, outputDir string) (string, error)
	Supports(format types.OutputFormat) bool
	Formats() []types.OutputFormat
}
