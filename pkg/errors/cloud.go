package errors

import (
	"errors"
	"fmt"
)

// ErrCollaboratorFault matches every failure returned by the cloud provider API,
// regardless of the operation that produced it.
var ErrCollaboratorFault = errors.New("cloud provider fault")

// ErrAWSConfigLoad wraps failures loading AWS SDK config.
type ErrAWSConfigLoad struct {
	Err error
}

func (e ErrAWSConfigLoad) Error() string {
	return fmt.Sprintf("unable to load AWS SDK config: %v", e.Err)
}

func (e ErrAWSConfigLoad) Unwrap() error {
	return e.Err
}

func NewAWSConfigLoad(err error) error {
	return ErrAWSConfigLoad{Err: err}
}

// ErrDescribeInstances wraps failures in DescribeInstances.
type ErrDescribeInstances struct {
	Err error
}

func (e ErrDescribeInstances) Error() string {
	return fmt.Sprintf("failed to describe instances, make sure your AWS credentials have not timed out: %v", e.Err)
}

func (e ErrDescribeInstances) Unwrap() error {
	return e.Err
}

func (e ErrDescribeInstances) Is(target error) bool {
	return target == ErrCollaboratorFault
}

func NewDescribeInstances(err error) error {
	return ErrDescribeInstances{Err: err}
}

// ErrListBuckets wraps failures in ListBuckets.
type ErrListBuckets struct {
	Err error
}

func (e ErrListBuckets) Error() string {
	return fmt.Sprintf("failed to list buckets: %v", e.Err)
}

func (e ErrListBuckets) Unwrap() error {
	return e.Err
}

func (e ErrListBuckets) Is(target error) bool {
	return target == ErrCollaboratorFault
}

func NewListBuckets(err error) error {
	return ErrListBuckets{Err: err}
}

// ErrDescribeVolumes wraps failures in the filtered DescribeVolumes query.
type ErrDescribeVolumes struct {
	Status string
	Err    error
}

func (e ErrDescribeVolumes) Error() string {
	return fmt.Sprintf("failed to describe volumes with status %q: %v", e.Status, e.Err)
}

func (e ErrDescribeVolumes) Unwrap() error {
	return e.Err
}

func (e ErrDescribeVolumes) Is(target error) bool {
	return target == ErrCollaboratorFault
}

func NewDescribeVolumes(status string, err error) error {
	return ErrDescribeVolumes{Status: status, Err: err}
}

// ErrDeleteVolume wraps a failed DeleteVolume call for a single volume.
type ErrDeleteVolume struct {
	VolumeID string
	Err      error
}

func (e ErrDeleteVolume) Error() string {
	return fmt.Sprintf("failed to delete volume %s: %v", e.VolumeID, e.Err)
}

func (e ErrDeleteVolume) Unwrap() error {
	return e.Err
}

func (e ErrDeleteVolume) Is(target error) bool {
	return target == ErrCollaboratorFault
}

func NewDeleteVolume(volumeID string, err error) error {
	return ErrDeleteVolume{VolumeID: volumeID, Err: err}
}
