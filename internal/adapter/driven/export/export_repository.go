package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/jung-kurt/gofpdf"
)

type writerFunc func(w io.Writer, report entity.CostReport, table string) error

type exporter struct {
	ext   string
	write writerFunc
}

// exporters mapeia cada formato suportado para sua extensão e serializador.
var exporters = map[types.OutputFormat]exporter{
	types.FormatCSV:  {ext: "csv", write: writeCSV},
	types.FormatHTML: {ext: "html", write: writeHTML},
	types.FormatJSON: {ext: "json", write: writeJSON},
	types.FormatText: {ext: "txt", write: writeText},
	types.FormatPDF:  {ext: "pdf", write: writePDF},
}

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) Supports(format types.OutputFormat) bool {
	_, ok := exporters[format]
	return ok
}

func (r *ExportRepositoryImpl) Formats() []types.OutputFormat {
	formats := make([]types.OutputFormat, 0, len(exporters))
	for f := range exporters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

func (r *ExportRepositoryImpl) Export(format types.OutputFormat, report entity.CostReport, table, filename, outputDir string) (string, error) {
	exp, ok := exporters[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format)
	}

	// Serializa em memória primeiro para não deixar arquivo parcial em caso de erro.
	var buf bytes.Buffer
	if err := exp.write(&buf, report, table); err != nil {
		return "", fmt.Errorf("error encoding %s report: %w", format, err)
	}

	outputFilename, err := generateFilename(filename, outputDir, exp.ext)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("error creating %s file: %w", format, err)
	}

	return filepath.Abs(outputFilename)
}

func writeCSV(w io.Writer, report entity.CostReport, _ string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(entity.ReportHeader); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err := writer.Write(row.Cells()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

var htmlTemplate = template.Must(template.New("report").Parse(`<table>
    <thead>
        <tr>
{{- range .Header}}
            <th>{{.}}</th>
{{- end}}
        </tr>
    </thead>
    <tbody>
{{- range .Rows}}
        <tr{{if .Divider}} class="divider"{{end}}>
            <td>{{.Period}}</td>
            <td>{{.Account}}</td>
            <td>{{.Service}}</td>
            <td style="text-align: right">{{.Amount}}</td>
        </tr>
{{- end}}
    </tbody>
</table>
`))

func writeHTML(w io.Writer, report entity.CostReport, _ string) error {
	return htmlTemplate.Execute(w, struct {
		Header []string
		Rows   []entity.Row
	}{
		Header: entity.ReportHeader,
		Rows:   report.Rows,
	})
}

func writeJSON(w io.Writer, report entity.CostReport, _ string) error {
	rows := report.Rows
	if rows == nil {
		rows = []entity.Row{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func writeText(w io.Writer, _ entity.CostReport, table string) error {
	text := stripANSI(table)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}

func writePDF(w io.Writer, report entity.CostReport, _ string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "AWS Cost Report")
	pdf.Ln(12)

	widths := []float64{40, 35, 85, 30}
	aligns := []string{"L", "L", "L", "R"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range entity.ReportHeader {
		pdf.CellFormat(widths[i], 8, h, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(50, 50, 50)
	for _, row := range report.Rows {
		border := "LR"
		if row.Divider {
			pdf.SetFont("Arial", "B", 9)
			border = "LRTB"
		} else {
			pdf.SetFont("Arial", "", 9)
		}
		for i, cell := range row.Cells() {
			pdf.CellFormat(widths[i], 7, tr(cell), border, 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// --- Funções Auxiliares ---

// generateFilename monta <dir>/<base>.<ext> e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", base, ext)), nil
}

// Regex para limpar sequências ANSI de cor/estilo deixadas pelo pterm.
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// stripANSI remove as sequências ANSI de um texto renderizado.
func stripANSI(text string) string {
	return ansiRegex.ReplaceAllString(text, "")
}
