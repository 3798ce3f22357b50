package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	dateLayout       = "2006-01-02"
	unblendedCost    = "UnblendedCost"
	costExplorerZone = "us-east-1"
)

// CostExplorerAPI is the subset of the Cost Explorer client used by the repository.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// CallerIdentityAPI is the subset of the STS client used by the repository.
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// AWSRepositoryImpl implementa o CostRepository com cache de configuração por perfil.
type AWSRepositoryImpl struct {
	cfgCache map[string]aws.Config
	logger   *zap.Logger

	loadConfig      func(ctx context.Context, profile string) (aws.Config, error)
	newCostExplorer func(cfg aws.Config) CostExplorerAPI
	newSTS          func(cfg aws.Config) CallerIdentityAPI
}

// NewAWSRepository cria uma nova implementação do CostRepository.
func NewAWSRepository(logger *zap.Logger) repository.CostRepository {
	return &AWSRepositoryImpl{
		cfgCache:   make(map[string]aws.Config),
		logger:     logger,
		loadConfig: loadSharedConfig,
		newCostExplorer: func(cfg aws.Config) CostExplorerAPI {
			return costexplorer.NewFromConfig(cfg)
		},
		newSTS: func(cfg aws.Config) CallerIdentityAPI {
			return sts.NewFromConfig(cfg)
		},
	}
}

// NewAWSRepositoryWithClients builds a repository around already constructed clients.
func NewAWSRepositoryWithClients(ce CostExplorerAPI, identity CallerIdentityAPI, logger *zap.Logger) repository.CostRepository {
	return &AWSRepositoryImpl{
		cfgCache: make(map[string]aws.Config),
		logger:   logger,
		loadConfig: func(context.Context, string) (aws.Config, error) {
			return aws.Config{}, nil
		},
		newCostExplorer: func(aws.Config) CostExplorerAPI { return ce },
		newSTS:          func(aws.Config) CallerIdentityAPI { return identity },
	}
}

func loadSharedConfig(ctx context.Context, profile string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	cfg, err := r.loadConfig(ctx, profile)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %q: %w", profile, err)
	}

	// Cost Explorer e STS global respondem apenas em us-east-1.
	cfg.Region = costExplorerZone
	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile string) (string, error) {
	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return "", err
	}

	result, err := r.newSTS(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %q: %w", profile, err)
	}
	return aws.ToString(result.Account), nil
}

// GetCostAndUsage fetches monthly unblended cost grouped by linked account and
// service. Pages are requested one after another until no NextPageToken is returned.
func (r *AWSRepositoryImpl) GetCostAndUsage(ctx context.Context, query entity.CostQuery) ([]entity.ResultGroup, error) {
	cfg, err := r.getAWSConfig(ctx, query.Profile)
	if err != nil {
		return nil, err
	}
	client := r.newCostExplorer(cfg)

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(query.Start.Format(dateLayout)),
			End:   aws.String(query.End.Format(dateLayout)),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{unblendedCost},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("LINKED_ACCOUNT")},
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
	}

	var results []entity.ResultGroup
	for page := 1; ; page++ {
		output, err := client.GetCostAndUsage(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("error getting cost and usage (page %d): %w", page, err)
		}

		for _, resultByTime := range output.ResultsByTime {
			group, err := toResultGroup(resultByTime)
			if err != nil {
				return nil, fmt.Errorf("malformed cost and usage response (page %d): %w", page, err)
			}
			results = append(results, group)
		}

		r.logger.Debug("fetched cost and usage page",
			zap.Int("page", page),
			zap.Int("periods", len(output.ResultsByTime)),
			zap.Bool("more", aws.ToString(output.NextPageToken) != ""),
		)

		if aws.ToString(output.NextPageToken) == "" {
			break
		}
		input.NextPageToken = output.NextPageToken
	}

	return results, nil
}

func toResultGroup(resultByTime ceTypes.ResultByTime) (entity.ResultGroup, error) {
	if resultByTime.TimePeriod == nil {
		return entity.ResultGroup{}, fmt.Errorf("result without time period")
	}

	start, err := time.Parse(dateLayout, aws.ToString(resultByTime.TimePeriod.Start))
	if err != nil {
		return entity.ResultGroup{}, fmt.Errorf("invalid period start: %w", err)
	}
	end, err := time.Parse(dateLayout, aws.ToString(resultByTime.TimePeriod.End))
	if err != nil {
		return entity.ResultGroup{}, fmt.Errorf("invalid period end: %w", err)
	}

	result := entity.ResultGroup{
		TimePeriod: entity.TimePeriod{Start: start, End: end},
		Groups:     make([]entity.GroupCost, 0, len(resultByTime.Groups)),
	}

	for _, group := range resultByTime.Groups {
		if len(group.Keys) < 2 {
			return entity.ResultGroup{}, fmt.Errorf("group keys %v: expected account and service", group.Keys)
		}
		metric, ok := group.Metrics[unblendedCost]
		if !ok || metric.Amount == nil {
			return entity.ResultGroup{}, fmt.Errorf("group %v has no %s metric", group.Keys, unblendedCost)
		}
		amount, err := decimal.NewFromString(*metric.Amount)
		if err != nil {
			return entity.ResultGroup{}, fmt.Errorf("group %v amount %q: %w", group.Keys, *metric.Amount, err)
		}

		result.Groups = append(result.Groups, entity.GroupCost{
			AccountID: group.Keys[0],
			Service:   group.Keys[1],
			Amount:    amount,
		})
	}

	return result, nil
}
