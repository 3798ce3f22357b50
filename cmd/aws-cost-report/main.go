package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-cost-report/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/export"
	"github.com/diillson/aws-cost-report/internal/adapter/driving/cli"
	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/pkg/console"
	"github.com/diillson/aws-cost-report/pkg/version"
	"go.uber.org/zap"
)

func main() {
	// O nível sobe para debug quando --debug é informado
	logLevel := zap.NewAtomicLevelAt(zap.WarnLevel)
	logger := newLogger(logLevel)

	// Inicializa os repositórios
	costRepo := aws.NewAWSRepository(logger)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		costRepo,
		exportRepo,
		consoleImpl,
		logger,
	)

	app := cli.NewCLIApp(version.Version, configRepo, logLevel)
	app.SetReportUseCase(reportUseCase)

	err := app.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level zap.AtomicLevel) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
