package app

import (
	"context"

	"github.com/oldmonad/cloudsweep/internal/lister"
	"github.com/oldmonad/cloudsweep/internal/reaper"
	"github.com/oldmonad/cloudsweep/pkg/cloud"
	"github.com/oldmonad/cloudsweep/pkg/cloud/aws"
	config "github.com/oldmonad/cloudsweep/pkg/config/cloud"
	awsConfig "github.com/oldmonad/cloudsweep/pkg/config/cloud/aws"
	"github.com/oldmonad/cloudsweep/pkg/config/env"
	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"go.uber.org/zap"
)

type App struct {
	Logger   *zap.Logger
	provider cloud.CloudProvider
}

// AppRunner is the set of operations exposed by both the CLI and the HTTP
// server.
type AppRunner interface {
	ListInstances(ctx context.Context) ([]lister.InstanceRecord, error)
	ListBuckets(ctx context.Context) ([]lister.BucketRecord, error)
	ReapVolumes(ctx context.Context, opts reaper.Options, notice reaper.NoticeFunc) (reaper.Result, error)
}

var _ AppRunner = (*App)(nil)

func NewApp(provider cloud.CloudProvider) *App {
	return &App{Logger: logger.GetLogger(), provider: provider}
}

// NewProvider builds the cloud provider named by the configuration.
func NewProvider(configurations env.Configurations) (cloud.CloudProvider, error) {
	switch configurations.CloudProviderType {
	case config.AWS, "":
		cfg, ok := configurations.CloudConfig.(*awsConfig.Config)
		if !ok {
			return nil, errors.NewErrCloudConfigNotInit()
		}
		return aws.NewAWSProvider(cfg), nil
	default:
		return nil, errors.NewUnsupportedProvider(string(configurations.CloudProviderType))
	}
}

func (a *App) ListInstances(ctx context.Context) ([]lister.InstanceRecord, error) {
	a.Logger.Debug("Listing instances")
	return lister.ListInstances(ctx, a.provider)
}

func (a *App) ListBuckets(ctx context.Context) ([]lister.BucketRecord, error) {
	a.Logger.Debug("Listing buckets")
	return lister.ListBuckets(ctx, a.provider)
}

// ReapVolumes runs one reaper pass. A nil notice discards per-volume notices.
func (a *App) ReapVolumes(ctx context.Context, opts reaper.Options, notice reaper.NoticeFunc) (reaper.Result, error) {
	var reaperOpts []reaper.Option
	if notice != nil {
		reaperOpts = append(reaperOpts, reaper.WithNotice(notice))
	}
	a.Logger.Info("Reaping volumes",
		zap.String("status", opts.Status),
		zap.Bool("dry_run", opts.DryRun))
	return reaper.New(a.provider, reaperOpts...).Reap(ctx, opts)
}
