package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns  []string
	aligns   []types.Alignment
	rows     [][]string
	dividers map[int]bool
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns:  []string{},
		rows:     [][]string{},
		dividers: map[int]bool{},
	}
}

// AddColumn adiciona uma coluna à tabela. Aceita um types.Alignment como opção.
func (t *Table) AddColumn(name string, options ...interface{}) {
	align := types.AlignLeft
	for _, opt := range options {
		if a, ok := opt.(types.Alignment); ok {
			align = a
		}
	}
	t.columns = append(t.columns, name)
	t.aligns = append(t.aligns, align)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// AddDivider marca a última linha adicionada como separadora.
func (t *Table) AddDivider() {
	if len(t.rows) > 0 {
		t.dividers[len(t.rows)-1] = true
	}
}

// tableData monta as células já alinhadas, com as linhas divisórias inseridas.
func (t *Table) tableData() pterm.TableData {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range t.rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	align := func(cells []string) []string {
		out := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if t.aligns[i] == types.AlignRight {
				cell = strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)) + cell
			}
			out[i] = cell
		}
		return out
	}

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}

	data := pterm.TableData{align(t.columns)}
	for i, row := range t.rows {
		data = append(data, align(row))
		if t.dividers[i] && i < len(t.rows)-1 {
			data = append(data, rule)
		}
	}
	return data
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(t.tableData())

	renderedTable, _ := table.Srender()
	return renderedTable + "\n"
}

// DisplayTrendBars exibe o subtotal de cada período como barra, com a variação período a período.
func (c *Console) DisplayTrendBars(monthlyCosts []types.MonthlyCost) {
	maxCost := 0.0
	for _, cost := range monthlyCosts {
		if cost.Cost > maxCost {
			maxCost = cost.Cost
		}
	}

	if maxCost == 0 {
		pterm.Warning.Println("All costs are $0.00 for this period")
		return
	}

	tableData := pterm.TableData{
		{"Period", "Cost", "", "Change"},
	}

	var prevCost *float64
	for _, mc := range monthlyCosts {
		bar := strings.Repeat("█", int((mc.Cost/maxCost)*40))

		barColor := pterm.FgBlue
		change := ""
		if prevCost != nil {
			change, barColor = periodChange(*prevCost, mc.Cost)
		}

		tableData = append(tableData, []string{
			mc.Month,
			fmt.Sprintf("$%.2f", mc.Cost),
			barColor.Sprint(bar),
			barColor.Sprint(change),
		})

		currentCost := mc.Cost
		prevCost = &currentCost
	}

	renderedTable, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	panel := pterm.DefaultBox.WithTitle("AWS Cost Trend by Period").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// periodChange formata a variação percentual e escolhe a cor da barra.
func periodChange(prev, cur float64) (string, pterm.Color) {
	if prev < 0.01 {
		if cur < 0.01 {
			return "0%", pterm.FgYellow
		}
		return "N/A", pterm.FgRed
	}

	changePercent := ((cur - prev) / prev) * 100.0
	switch {
	case math.Abs(changePercent) < 0.01:
		return "0%", pterm.FgYellow
	case changePercent > 999:
		return ">+999%", pterm.FgRed
	case changePercent < -999:
		return ">-999%", pterm.FgGreen
	case changePercent > 0:
		return fmt.Sprintf("+%.2f%%", changePercent), pterm.FgRed
	default:
		return fmt.Sprintf("%.2f%%", changePercent), pterm.FgGreen
	}
}
