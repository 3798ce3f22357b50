package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"go.uber.org/zap"
)

// ReportFilename is the base name of the exported file.
const ReportFilename = "output"

const dateLayout = "2006-01-02"

// ReportUseCase handles the cost report generation.
type ReportUseCase struct {
	costRepo   repository.CostRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	logger     *zap.Logger
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	costRepo repository.CostRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		costRepo:   costRepo,
		exportRepo: exportRepo,
		console:    console,
		logger:     logger,
	}
}

// ValidateArgs rejects an export format that has no writer.
func (uc *ReportUseCase) ValidateArgs(args *types.CLIArgs) error {
	if args.Out == "" || uc.exportRepo.Supports(args.Out) {
		return nil
	}

	formats := make([]string, 0)
	for _, f := range uc.exportRepo.Formats() {
		formats = append(formats, string(f))
	}
	return fmt.Errorf("%w %q: no output file specified (%s)", types.ErrUnsupportedFormat, args.Out, strings.Join(formats, ", "))
}

// RunReport fetches the cost data, prints the table and writes the optional export.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.ValidateArgs(args); err != nil {
		return err
	}

	uc.logger.Debug("running cost report",
		zap.String("profile", args.Profile),
		zap.String("start", args.Start.Format(dateLayout)),
		zap.String("end", args.End.Format(dateLayout)),
		zap.Bool("only_total", args.OnlyTotal),
		zap.String("out", string(args.Out)),
	)

	if accountID, err := uc.costRepo.GetAccountID(ctx, args.Profile); err != nil {
		uc.console.LogWarning("Could not resolve the AWS account: %s", err)
	} else {
		uc.console.LogInfo("Cost report for account %s", accountID)
	}

	status := uc.console.Status(fmt.Sprintf("Fetching cost and usage from %s to %s...",
		args.Start.Format(dateLayout), args.End.Format(dateLayout)))

	results, err := uc.costRepo.GetCostAndUsage(ctx, entity.CostQuery{
		Profile: args.Profile,
		Start:   args.Start,
		End:     args.End,
	})
	status.Stop()
	if err != nil {
		return err
	}

	report := BuildReport(results, args.OnlyTotal)
	table := uc.renderTable(report)

	if args.Out != "" {
		path, err := uc.exportRepo.Export(args.Out, report, table, ReportFilename, args.Dir)
		if err != nil {
			return err
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(string(args.Out)), path)
	}

	uc.console.Print(table)

	if args.Trend {
		uc.console.DisplayTrendBars(periodCosts(report))
	}

	return nil
}

// renderTable builds the console table for a report.
func (uc *ReportUseCase) renderTable(report entity.CostReport) string {
	table := uc.console.CreateTable()
	for i, column := range entity.ReportHeader {
		if i == len(entity.ReportHeader)-1 {
			table.AddColumn(column, types.AlignRight)
			continue
		}
		table.AddColumn(column, types.AlignLeft)
	}

	for _, row := range report.Rows {
		table.AddRow(row.Period, row.Account, row.Service, row.Amount)
		if row.Divider {
			table.AddDivider()
		}
	}

	return table.Render()
}

func periodCosts(report entity.CostReport) []types.MonthlyCost {
	costs := make([]types.MonthlyCost, 0, len(report.Subtotals))
	for _, subtotal := range report.Subtotals {
		costs = append(costs, types.MonthlyCost{
			Month: subtotal.Label,
			Cost:  subtotal.Amount.InexactFloat64(),
		})
	}
	return costs
}
