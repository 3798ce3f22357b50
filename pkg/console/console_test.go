package console

import (
	"strings"
	"testing"

	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportTable() *Table {
	table := NewConsole().CreateTable().(*Table)
	table.AddColumn("Period")
	table.AddColumn("Account")
	table.AddColumn("Service")
	table.AddColumn("Amount", types.AlignRight)
	return table
}

func TestTableData_RightAlignsAmountColumn(t *testing.T) {
	table := newReportTable()
	table.AddRow("Nov 2024", "111", "EC2", "1234.50")
	table.AddRow("Nov 2024", "111", "S3", "5.00")

	data := table.tableData()
	require.Len(t, data, 3)

	assert.Equal(t, []string{"Period", "Account", "Service", " Amount"}, data[0])
	assert.Equal(t, "1234.50", data[1][3])
	assert.Equal(t, "   5.00", data[2][3])
	// left aligned columns are left to pterm
	assert.Equal(t, "S3", data[2][2])
}

func TestTableData_DividerRows(t *testing.T) {
	table := newReportTable()
	table.AddRow("Oct 2024", "111", "EC2", "10.00")
	table.AddRow("Total Oct 2024", "111", "ALL SERVICES", "10.00")
	table.AddDivider()
	table.AddRow("Nov 2024", "111", "EC2", "20.00")
	table.AddRow("Total Nov 2024", "111", "ALL SERVICES", "20.00")
	table.AddDivider()

	data := table.tableData()

	// header + 4 rows + 1 rule (no rule after the last row, the box closes it)
	require.Len(t, data, 6)
	assert.Equal(t, strings.Repeat("─", len("Total Oct 2024")), data[3][0])
	assert.Equal(t, strings.Repeat("─", len("ALL SERVICES")), data[3][2])
	assert.Equal(t, "Nov 2024", data[4][0])
}

func TestAddDivider_EmptyTable(t *testing.T) {
	table := newReportTable()
	table.AddDivider()
	assert.Empty(t, table.dividers)
	assert.Len(t, table.tableData(), 1)
}

func TestRender_ContainsCells(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	table := newReportTable()
	table.AddRow("Nov 2024", "111", "EC2", "12.35")
	table.AddRow("Total Nov 2024", "111", "ALL SERVICES", "12.35")
	table.AddDivider()

	out := table.Render()
	assert.Contains(t, out, "Total Nov 2024")
	assert.Contains(t, out, "ALL SERVICES")
	assert.Contains(t, out, "12.35")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestPeriodChange(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur float64
		want      string
		color     pterm.Color
	}{
		{"both zero", 0, 0, "0%", pterm.FgYellow},
		{"from zero", 0, 10, "N/A", pterm.FgRed},
		{"flat", 10, 10, "0%", pterm.FgYellow},
		{"increase", 10, 15, "+50.00%", pterm.FgRed},
		{"decrease", 20, 15, "-25.00%", pterm.FgGreen},
		{"huge increase", 1, 100, ">+999%", pterm.FgRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, color := periodChange(tt.prev, tt.cur)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.color, color)
		})
	}
}
