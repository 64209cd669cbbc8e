package lister

import (
	"context"

	"github.com/oldmonad/cloudsweep/pkg/cloud"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/oldmonad/cloudsweep/pkg/metrics"
	"go.uber.org/zap"
)

// UnknownInstanceType stands in for an instance type the provider omitted.
const UnknownInstanceType = "unknown"

type InstanceRecord struct {
	InstanceID   string `json:"instance_id"`
	State        string `json:"state"`
	InstanceType string `json:"instance_type"`
}

type InstanceDescriber interface {
	DescribeInstances(ctx context.Context) ([]cloud.Reservation, error)
}

// ListInstances flattens the reservation grouping into one record per
// instance, in the order the provider returned them. Faults are returned
// unchanged with no partial result.
func ListInstances(ctx context.Context, api InstanceDescriber) ([]InstanceRecord, error) {
	log := logger.WithField("component", "instance-lister")

	reservations, err := api.DescribeInstances(ctx)
	if err != nil {
		metrics.CollaboratorFaults.WithLabelValues("describe_instances").Inc()
		log.Error("Failed to describe instances", zap.Error(err))
		return nil, err
	}

	records := make([]InstanceRecord, 0)
	for _, reservation := range reservations {
		for _, instance := range reservation.Instances {
			instanceType := instance.InstanceType
			if instanceType == "" {
				instanceType = UnknownInstanceType
			}
			records = append(records, InstanceRecord{
				InstanceID:   instance.InstanceID,
				State:        instance.State,
				InstanceType: instanceType,
			})
		}
	}

	metrics.ResourcesListed.WithLabelValues("instances").Add(float64(len(records)))
	log.Debug("Listed instances",
		zap.Int("reservation_count", len(reservations)),
		zap.Int("instance_count", len(records)))
	return records, nil
}
