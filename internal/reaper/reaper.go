package reaper

import (
	"context"

	"github.com/google/uuid"
	"github.com/oldmonad/cloudsweep/pkg/cloud"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/oldmonad/cloudsweep/pkg/metrics"
	"go.uber.org/zap"
)

// DefaultStatus selects unattached volumes.
const DefaultStatus = "available"

type VolumeAPI interface {
	DescribeVolumes(ctx context.Context, status string) ([]cloud.Volume, error)
	DeleteVolume(ctx context.Context, volumeID string) error
}

// NoticeFunc is called for each matched volume before it is deleted, or in
// place of deletion during a dry run.
type NoticeFunc func(volumeID string, dryRun bool)

type Options struct {
	Status string `json:"status"`
	DryRun bool   `json:"dry_run"`
}

func (o Options) status() string {
	if o.Status == "" {
		return DefaultStatus
	}
	return o.Status
}

type Result struct {
	RunID   string   `json:"run_id"`
	Status  string   `json:"status"`
	DryRun  bool     `json:"dry_run"`
	Matched []string `json:"matched"`
	Deleted []string `json:"deleted"`
}

// Count is the number of volumes actually deleted.
func (r Result) Count() int {
	return len(r.Deleted)
}

type Reaper struct {
	api    VolumeAPI
	notify NoticeFunc
	logger *zap.Logger
}

type Option func(*Reaper)

func WithNotice(fn NoticeFunc) Option {
	return func(r *Reaper) {
		r.notify = fn
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Reaper) {
		r.logger = l
	}
}

func New(api VolumeAPI, opts ...Option) *Reaper {
	r := &Reaper{
		api:    api,
		notify: func(string, bool) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.WithField("component", "volume-reaper")
	}
	return r
}

// Reap deletes every volume the provider reports with the given status, one
// at a time in response order. The status filter is applied server-side only.
// Volumes are not re-checked before deletion, so one attached between the
// query and its delete call makes that delete fail. The first failure stops
// the run and is returned with the volumes deleted so far.
func (r *Reaper) Reap(ctx context.Context, opts Options) (Result, error) {
	result := Result{
		RunID:   uuid.New().String(),
		Status:  opts.status(),
		DryRun:  opts.DryRun,
		Matched: []string{},
		Deleted: []string{},
	}
	log := r.logger.With(zap.String("run_id", result.RunID), zap.String("status", result.Status))

	volumes, err := r.api.DescribeVolumes(ctx, result.Status)
	if err != nil {
		metrics.CollaboratorFaults.WithLabelValues("describe_volumes").Inc()
		log.Error("Failed to describe volumes", zap.Error(err))
		return result, err
	}
	log.Info("Found volumes to reap", zap.Int("count", len(volumes)), zap.Bool("dry_run", opts.DryRun))

	for _, v := range volumes {
		result.Matched = append(result.Matched, v.VolumeID)
		r.notify(v.VolumeID, opts.DryRun)
		if opts.DryRun {
			continue
		}

		if err := r.api.DeleteVolume(ctx, v.VolumeID); err != nil {
			metrics.CollaboratorFaults.WithLabelValues("delete_volume").Inc()
			log.Error("Failed to delete volume, aborting run",
				zap.String("volume_id", v.VolumeID),
				zap.Int("deleted_so_far", len(result.Deleted)),
				zap.Error(err))
			return result, err
		}
		metrics.VolumesDeleted.Inc()
		result.Deleted = append(result.Deleted, v.VolumeID)
	}

	log.Info("Volume reap finished", zap.Int("deleted", result.Count()))
	return result, nil
}
