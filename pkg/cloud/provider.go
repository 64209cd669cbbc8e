package cloud

import (
	"context"
	"time"
)

// Instance is a compute instance as reported by the provider. InstanceType is
// empty when the provider omits it.
type Instance struct {
	InstanceID   string `json:"instance_id"`
	State        string `json:"state"`
	InstanceType string `json:"instance_type"`
}

// Reservation groups the instances launched together.
type Reservation struct {
	Instances []Instance `json:"instances"`
}

type Bucket struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}

type Volume struct {
	VolumeID string `json:"volume_id"`
	Status   string `json:"status"`
}

// CloudProvider is the set of provider calls cloudsweep depends on. Every
// method is a single blocking request; failures are returned as-is.
type CloudProvider interface {
	DescribeInstances(ctx context.Context) ([]Reservation, error)
	ListBuckets(ctx context.Context) ([]Bucket, error)
	DescribeVolumes(ctx context.Context, status string) ([]Volume, error)
	DeleteVolume(ctx context.Context, volumeID string) error
}
