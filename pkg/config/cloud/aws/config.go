package aws

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"go.uber.org/zap"
)

// Config holds optional static AWS settings read from the environment.
// Anything left empty is resolved by the SDK default chain.
type Config struct {
	AccessKey    string
	SecretKey    string
	Region       string
	SessionToken string
}

func LoadConfig() *Config {
	return &Config{
		AccessKey:    os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		Region:       os.Getenv("AWS_REGION"),
		SessionToken: os.Getenv("AWS_SESSION_TOKEN"),
	}
}

// Validate rejects a half-configured static key pair. An entirely empty
// config is valid.
func (c *Config) Validate() error {
	var missing []string
	if c.AccessKey == "" && c.SecretKey != "" {
		missing = append(missing, "AWS_ACCESS_KEY_ID")
	}
	if c.SecretKey == "" && c.AccessKey != "" {
		missing = append(missing, "AWS_SECRET_ACCESS_KEY")
	}
	if c.SessionToken != "" && c.AccessKey == "" && c.SecretKey == "" {
		missing = append(missing, "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY")
	}

	if len(missing) > 0 {
		logger.GetLogger().Error("AWS config validation failed", zap.Strings("missing", missing))
		return errors.NewErrMissingCredentials(missing)
	}
	return nil
}

// HasStaticCredentials reports whether both halves of a static key pair are set.
func (c *Config) HasStaticCredentials() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

func (c *Config) GetCredentials() interface{} {
	return aws.Credentials{
		AccessKeyID:     c.AccessKey,
		SecretAccessKey: c.SecretKey,
		SessionToken:    c.SessionToken,
	}
}

func (c *Config) GetRegion() string {
	return c.Region
}
