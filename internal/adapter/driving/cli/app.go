package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/diillson/aws-cost-report/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const dateLayout = "2006-01-02"

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	configRepo    repository.ConfigRepository
	logLevel      zap.AtomicLevel
	version       string
	now           func() time.Time
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, logLevel zap.AtomicLevel) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
		logLevel:   logLevel,
		now:        time.Now,
	}

	rootCmd := &cobra.Command{
		Use:           "aws-cost-report",
		Short:         "AWS cost report by linked account and service",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	flags := rootCmd.Flags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("profile", "p", "", "Use the AWS profile name (optional)")
	flags.StringP("start", "s", "", "Start date YYYY-MM-DD (default: 1st date of current month)")
	flags.StringP("end", "e", "", "End date YYYY-MM-DD (default: last date of current month)")
	flags.Bool("only-total", false, "Show only total by month and year")
	flags.StringP("out", "o", "", "Choose the output file options (csv, html, json, text or pdf)")
	flags.StringP("dir", "d", "", "Directory to save the output file (default: result)")
	flags.Bool("trend", false, "Display the total of each period as bars after the table")
	flags.Bool("debug", false, "Write debug logs to stderr")
	flags.Bool("no-banner", false, "Do not print the welcome banner")

	rootCmd.AddCommand(app.newVersionCommand())

	app.rootCmd = rootCmd
	return app
}

func (app *CLIApp) newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and optionally check for a newer release",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.FormatVersion())
			if check, _ := cmd.Flags().GetBool("check"); check {
				version.CheckLatestVersion(app.version)
			}
			return nil
		},
	}
	cmd.Flags().Bool("check", false, "Check GitHub for a newer release")
	return cmd
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs resolve os argumentos na ordem: flag explícita, arquivo de configuração, ambiente, padrão.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	env, err := app.configRepo.LoadEnv()
	if err != nil {
		return nil, err
	}

	args := &types.CLIArgs{
		Profile:   env.Profile,
		OnlyTotal: env.OnlyTotal,
		Out:       types.OutputFormat(env.Out),
		Dir:       env.Dir,
		Debug:     env.Debug,
	}
	var start, end string

	args.ConfigFile, _ = flags.GetString("config-file")
	if args.ConfigFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		overrideString(&args.Profile, cfg.Profile)
		overrideString(&start, cfg.Start)
		overrideString(&end, cfg.End)
		overrideString(&args.Dir, cfg.Dir)
		if cfg.Out != "" {
			args.Out = types.OutputFormat(cfg.Out)
		}
		args.OnlyTotal = args.OnlyTotal || cfg.OnlyTotal
		args.Trend = cfg.Trend
	}

	if flags.Changed("profile") {
		args.Profile, _ = flags.GetString("profile")
	}
	if flags.Changed("start") {
		start, _ = flags.GetString("start")
	}
	if flags.Changed("end") {
		end, _ = flags.GetString("end")
	}
	if flags.Changed("only-total") {
		args.OnlyTotal, _ = flags.GetBool("only-total")
	}
	if flags.Changed("out") {
		out, _ := flags.GetString("out")
		args.Out = types.OutputFormat(out)
	}
	if flags.Changed("dir") {
		args.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("trend") {
		args.Trend, _ = flags.GetBool("trend")
	}
	if flags.Changed("debug") {
		args.Debug, _ = flags.GetBool("debug")
	}
	args.NoBanner, _ = flags.GetBool("no-banner")

	args.Out = types.OutputFormat(strings.ToLower(strings.TrimSpace(string(args.Out))))
	if args.Dir == "" {
		args.Dir = "result"
	}

	args.Start, args.End, err = resolvePeriod(start, end, app.now())
	if err != nil {
		return nil, err
	}

	return args, nil
}

func overrideString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// resolvePeriod usa o mês corrente quando início ou fim não foram informados.
func resolvePeriod(start, end string, now time.Time) (time.Time, time.Time, error) {
	if start == "" || end == "" {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, -1), nil
	}

	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q", types.ErrInvalidDate, start)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q", types.ErrInvalidDate, end)
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s", types.ErrInvalidRange, start, end)
	}
	return startDate, endDate, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if cliArgs.Debug {
		app.logLevel.SetLevel(zapcore.DebugLevel)
	}

	// Erros de uso são reportados antes de qualquer saída.
	if err := app.reportUseCase.ValidateArgs(cliArgs); err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner()
	}

	return app.reportUseCase.RunReport(cmd.Context(), cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
