package cloud

import (
	"github.com/oldmonad/cloudsweep/pkg/config/cloud/aws"
	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"go.uber.org/zap"
)

type ProviderConfig interface {
	Validate() error
	GetCredentials() interface{}
	GetRegion() string
}

type ProviderType string

const (
	AWS ProviderType = "aws"
)

func NewProviderConfig(provider ProviderType) (ProviderConfig, error) {
	switch provider {
	case AWS, "":
		cfg := aws.LoadConfig()

		fields := []zap.Field{zap.String("region", cfg.Region)}
		if len(cfg.AccessKey) >= 4 {
			fields = append(fields, zap.String("access_key", cfg.AccessKey[:4]+"****"))
		} else {
			fields = append(fields, zap.String("credentials", "default chain"))
		}
		logger.GetLogger().Debug("Loaded AWS configuration", fields...)

		if err := cfg.Validate(); err != nil {
			logger.GetLogger().Error("AWS configuration validation failed",
				zap.Error(err))
			return nil, err
		}
		return cfg, nil
	default:
		return nil, errors.NewUnsupportedProvider(string(provider))
	}
}
