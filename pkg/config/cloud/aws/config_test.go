package aws_test

import (
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/oldmonad/cloudsweep/pkg/config/cloud/aws"
	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	logger.SetLogger(zap.NewNop())
	m.Run()
}

func TestLoadConfig(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		t.Setenv("AWS_ACCESS_KEY_ID", "test-access")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret")
		t.Setenv("AWS_REGION", "test-region")
		t.Setenv("AWS_SESSION_TOKEN", "test-token")

		cfg := awsConfig.LoadConfig()

		assert.Equal(t, "test-access", cfg.AccessKey)
		assert.Equal(t, "test-secret", cfg.SecretKey)
		assert.Equal(t, "test-region", cfg.Region)
		assert.Equal(t, "test-token", cfg.SessionToken)
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Setenv("AWS_ACCESS_KEY_ID", "")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "")
		t.Setenv("AWS_REGION", "")
		t.Setenv("AWS_SESSION_TOKEN", "")

		cfg := awsConfig.LoadConfig()

		assert.Equal(t, &awsConfig.Config{}, cfg)
		assert.False(t, cfg.HasStaticCredentials())
	})
}

func TestGetCredentials(t *testing.T) {
	cfg := &awsConfig.Config{
		AccessKey:    "AKIAEXAMPLE",
		SecretKey:    "SecretKeyExample",
		SessionToken: "SessionTokenExample",
	}

	creds, ok := cfg.GetCredentials().(aws.Credentials)
	require.True(t, ok, "Should return aws.Credentials type")

	assert.Equal(t, "AKIAEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "SecretKeyExample", creds.SecretAccessKey)
	assert.Equal(t, "SessionTokenExample", creds.SessionToken)
	assert.True(t, cfg.HasStaticCredentials())
}

func TestGetRegion(t *testing.T) {
	assert.Equal(t, "eu-central-1", (&awsConfig.Config{Region: "eu-central-1"}).GetRegion())
	assert.Empty(t, (&awsConfig.Config{}).GetRegion())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *awsConfig.Config
		wantErr bool
		missing []string
	}{
		{
			name:   "default chain",
			config: &awsConfig.Config{},
		},
		{
			name:   "region only",
			config: &awsConfig.Config{Region: "us-east-1"},
		},
		{
			name: "full static pair",
			config: &awsConfig.Config{
				AccessKey:    "access",
				SecretKey:    "secret",
				Region:       "region",
				SessionToken: "sessiontoken",
			},
		},
		{
			name:    "missing access key id",
			config:  &awsConfig.Config{SecretKey: "secret"},
			wantErr: true,
			missing: []string{"AWS_ACCESS_KEY_ID"},
		},
		{
			name:    "missing secret key",
			config:  &awsConfig.Config{AccessKey: "access"},
			wantErr: true,
			missing: []string{"AWS_SECRET_ACCESS_KEY"},
		},
		{
			name:    "session token without key pair",
			config:  &awsConfig.Config{SessionToken: "token"},
			wantErr: true,
			missing: []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, recordedLogs := observer.New(zap.ErrorLevel)

			originalLogger := logger.Log
			logger.Log = zap.New(core)
			defer func() { logger.Log = originalLogger }()

			err := tt.config.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				assert.Zero(t, recordedLogs.Len())
				return
			}

			require.Error(t, err)
			var credsErr errors.ErrMissingCredentials
			require.ErrorAs(t, err, &credsErr)
			assert.ElementsMatch(t, tt.missing, credsErr.Missing)

			require.Equal(t, 1, recordedLogs.Len())
			logEntry := recordedLogs.All()[0]
			assert.Equal(t, "AWS config validation failed", logEntry.Message)

			var loggedMissing []string
			for _, field := range logEntry.Context {
				if field.Key == "missing" {
					val := reflect.ValueOf(field.Interface)
					if val.Kind() == reflect.Slice {
						for i := 0; i < val.Len(); i++ {
							loggedMissing = append(loggedMissing, val.Index(i).Interface().(string))
						}
					}
					break
				}
			}
			assert.ElementsMatch(t, tt.missing, loggedMissing)
		})
	}
}
