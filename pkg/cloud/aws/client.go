package aws

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsPkgConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/oldmonad/cloudsweep/pkg/cloud"
	awsConfig "github.com/oldmonad/cloudsweep/pkg/config/cloud/aws"
	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"go.uber.org/zap"
)

type EC2Client interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeVolumes(ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error)
	DeleteVolume(ctx context.Context, params *ec2.DeleteVolumeInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVolumeOutput, error)
}

type S3Client interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

// AWSProvider implements cloud.CloudProvider against EC2 and S3. Clients are
// built lazily from Config on first use unless injected with SetEC2Client or
// SetS3Client. A provider is safe for concurrent use and builds each client
// at most once.
type AWSProvider struct {
	Config *awsConfig.Config

	mu     sync.Mutex
	ec2API EC2Client
	s3API  S3Client
}

var (
	newEC2Client = func(cfg aws.Config) EC2Client { return ec2.NewFromConfig(cfg) }
	newS3Client  = func(cfg aws.Config) S3Client { return s3.NewFromConfig(cfg) }
)

var _ cloud.CloudProvider = (*AWSProvider)(nil)

func NewAWSProvider(cfg *awsConfig.Config) *AWSProvider {
	return &AWSProvider{Config: cfg}
}

// loadSDKConfig resolves region and credentials. Static keys are used only
// when both halves are present; otherwise the SDK default chain applies.
func (p *AWSProvider) loadSDKConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*awsPkgConfig.LoadOptions) error
	if p.Config != nil {
		if region := p.Config.GetRegion(); region != "" {
			opts = append(opts, awsPkgConfig.WithRegion(region))
		}
		if creds, ok := p.Config.GetCredentials().(aws.Credentials); ok && p.Config.HasStaticCredentials() {
			opts = append(opts, awsPkgConfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(
					creds.AccessKeyID,
					creds.SecretAccessKey,
					creds.SessionToken,
				),
			))
		}
	}

	awsCfg, err := awsPkgConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.NewAWSConfigLoad(err)
	}
	return awsCfg, nil
}

// ec2Client builds the client under mu, so concurrent first calls share one
// SDK config load.
func (p *AWSProvider) ec2Client(ctx context.Context) (EC2Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ec2API == nil {
		awsCfg, err := p.loadSDKConfig(ctx)
		if err != nil {
			return nil, err
		}
		p.ec2API = newEC2Client(awsCfg)
	}
	return p.ec2API, nil
}

func (p *AWSProvider) s3Client(ctx context.Context) (S3Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.s3API == nil {
		awsCfg, err := p.loadSDKConfig(ctx)
		if err != nil {
			return nil, err
		}
		p.s3API = newS3Client(awsCfg)
	}
	return p.s3API, nil
}

// DescribeInstances issues one DescribeInstances call. Only the first page
// is read.
func (p *AWSProvider) DescribeInstances(ctx context.Context) ([]cloud.Reservation, error) {
	client, err := p.ec2Client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, errors.NewDescribeInstances(err)
	}

	reservations := make([]cloud.Reservation, 0, len(out.Reservations))
	for _, r := range out.Reservations {
		res := cloud.Reservation{Instances: make([]cloud.Instance, 0, len(r.Instances))}
		for _, instance := range r.Instances {
			res.Instances = append(res.Instances, mapInstance(instance))
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (p *AWSProvider) ListBuckets(ctx context.Context) ([]cloud.Bucket, error) {
	client, err := p.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, errors.NewListBuckets(err)
	}

	buckets := make([]cloud.Bucket, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		buckets = append(buckets, cloud.Bucket{
			Name:         aws.ToString(b.Name),
			CreationDate: aws.ToTime(b.CreationDate),
		})
	}
	return buckets, nil
}

// DescribeVolumes queries volumes with a server-side status filter.
func (p *AWSProvider) DescribeVolumes(ctx context.Context, status string) ([]cloud.Volume, error) {
	client, err := p.ec2Client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		Filters: []types.Filter{
			{Name: aws.String("status"), Values: []string{status}},
		},
	})
	if err != nil {
		return nil, errors.NewDescribeVolumes(status, err)
	}

	volumes := make([]cloud.Volume, 0, len(out.Volumes))
	for _, v := range out.Volumes {
		volumes = append(volumes, cloud.Volume{
			VolumeID: aws.ToString(v.VolumeId),
			Status:   string(v.State),
		})
	}
	return volumes, nil
}

func (p *AWSProvider) DeleteVolume(ctx context.Context, volumeID string) error {
	client, err := p.ec2Client(ctx)
	if err != nil {
		return err
	}

	if _, err := client.DeleteVolume(ctx, &ec2.DeleteVolumeInput{VolumeId: aws.String(volumeID)}); err != nil {
		return errors.NewDeleteVolume(volumeID, err)
	}
	logger.GetLogger().Debug("Deleted volume", zap.String("volume_id", volumeID))
	return nil
}

func mapInstance(instance types.Instance) cloud.Instance {
	var state string
	if instance.State != nil {
		state = string(instance.State.Name)
	}
	return cloud.Instance{
		InstanceID:   aws.ToString(instance.InstanceId),
		State:        state,
		InstanceType: string(instance.InstanceType),
	}
}

func (p *AWSProvider) SetEC2Client(c EC2Client) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ec2API = c
}

func (p *AWSProvider) SetS3Client(c S3Client) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.s3API = c
}
