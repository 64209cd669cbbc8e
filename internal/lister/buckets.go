package lister

import (
	"context"
	"time"

	"github.com/oldmonad/cloudsweep/pkg/cloud"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/oldmonad/cloudsweep/pkg/metrics"
	"go.uber.org/zap"
)

type BucketRecord struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}

type BucketLister interface {
	ListBuckets(ctx context.Context) ([]cloud.Bucket, error)
}

// ListBuckets returns one record per bucket with fields copied as reported.
func ListBuckets(ctx context.Context, api BucketLister) ([]BucketRecord, error) {
	log := logger.WithField("component", "bucket-lister")

	buckets, err := api.ListBuckets(ctx)
	if err != nil {
		metrics.CollaboratorFaults.WithLabelValues("list_buckets").Inc()
		log.Error("Failed to list buckets", zap.Error(err))
		return nil, err
	}

	records := make([]BucketRecord, 0, len(buckets))
	for _, b := range buckets {
		records = append(records, BucketRecord{Name: b.Name, CreationDate: b.CreationDate})
	}

	metrics.ResourcesListed.WithLabelValues("buckets").Add(float64(len(records)))
	log.Debug("Listed buckets", zap.Int("bucket_count", len(records)))
	return records, nil
}
