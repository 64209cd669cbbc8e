package app_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/oldmonad/cloudsweep/internal/app"
	"github.com/oldmonad/cloudsweep/internal/lister"
	"github.com/oldmonad/cloudsweep/internal/reaper"
	"github.com/oldmonad/cloudsweep/pkg/cloud"
	"github.com/oldmonad/cloudsweep/pkg/cloud/aws"
	config "github.com/oldmonad/cloudsweep/pkg/config/cloud"
	awsConfig "github.com/oldmonad/cloudsweep/pkg/config/cloud/aws"
	"github.com/oldmonad/cloudsweep/pkg/config/env"
	customErr "github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.SetLogger(zap.NewNop())
	os.Exit(m.Run())
}

type MockCloudProvider struct {
	mock.Mock
}

func (m *MockCloudProvider) DescribeInstances(ctx context.Context) ([]cloud.Reservation, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]cloud.Reservation)
	return res, args.Error(1)
}

func (m *MockCloudProvider) ListBuckets(ctx context.Context) ([]cloud.Bucket, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]cloud.Bucket)
	return res, args.Error(1)
}

func (m *MockCloudProvider) DescribeVolumes(ctx context.Context, status string) ([]cloud.Volume, error) {
	args := m.Called(ctx, status)
	res, _ := args.Get(0).([]cloud.Volume)
	return res, args.Error(1)
}

func (m *MockCloudProvider) DeleteVolume(ctx context.Context, volumeID string) error {
	args := m.Called(ctx, volumeID)
	return args.Error(0)
}

func TestListInstances(t *testing.T) {
	provider := new(MockCloudProvider)
	provider.On("DescribeInstances", mock.Anything).Return([]cloud.Reservation{
		{Instances: []cloud.Instance{{InstanceID: "i-1", State: "running"}}},
	}, nil)

	a := app.NewApp(provider)
	records, err := a.ListInstances(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []lister.InstanceRecord{
		{InstanceID: "i-1", State: "running", InstanceType: lister.UnknownInstanceType},
	}, records)
	provider.AssertExpectations(t)
}

func TestListBucketsPropagatesFault(t *testing.T) {
	provider := new(MockCloudProvider)
	fault := customErr.NewListBuckets(errors.New("AccessDenied"))
	provider.On("ListBuckets", mock.Anything).Return(nil, fault)

	a := app.NewApp(provider)
	records, err := a.ListBuckets(context.Background())

	assert.Nil(t, records)
	assert.ErrorIs(t, err, customErr.ErrCollaboratorFault)
}

func TestReapVolumes(t *testing.T) {
	t.Run("notices precede deletes", func(t *testing.T) {
		provider := new(MockCloudProvider)
		provider.On("DescribeVolumes", mock.Anything, "available").Return([]cloud.Volume{
			{VolumeID: "vol-1", Status: "available"},
			{VolumeID: "vol-2", Status: "available"},
		}, nil)

		var events []string
		provider.On("DeleteVolume", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			events = append(events, "delete "+args.String(1))
		}).Return(nil)

		a := app.NewApp(provider)
		result, err := a.ReapVolumes(context.Background(), reaper.Options{}, func(id string, dryRun bool) {
			events = append(events, "notice "+id)
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Count())
		assert.Equal(t, []string{"notice vol-1", "delete vol-1", "notice vol-2", "delete vol-2"}, events)
	})

	t.Run("nil notice", func(t *testing.T) {
		provider := new(MockCloudProvider)
		provider.On("DescribeVolumes", mock.Anything, "error").Return([]cloud.Volume{}, nil)

		a := app.NewApp(provider)
		result, err := a.ReapVolumes(context.Background(), reaper.Options{Status: "error"}, nil)

		require.NoError(t, err)
		assert.Zero(t, result.Count())
		provider.AssertNotCalled(t, "DeleteVolume", mock.Anything, mock.Anything)
	})
}

func TestNewProvider(t *testing.T) {
	t.Run("aws", func(t *testing.T) {
		cfg := &awsConfig.Config{Region: "us-east-1"}
		provider, err := app.NewProvider(env.Configurations{
			CloudProviderType: config.AWS,
			CloudConfig:       cfg,
		})
		require.NoError(t, err)
		require.IsType(t, &aws.AWSProvider{}, provider)
		assert.Same(t, cfg, provider.(*aws.AWSProvider).Config)
	})

	t.Run("missing cloud config", func(t *testing.T) {
		_, err := app.NewProvider(env.Configurations{CloudProviderType: config.AWS})
		var notInit customErr.ErrCloudConfigNotInit
		assert.ErrorAs(t, err, &notInit)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := app.NewProvider(env.Configurations{CloudProviderType: "azure"})
		var unsupported customErr.ErrUnsupportedProvider
		assert.ErrorAs(t, err, &unsupported)
	})
}
