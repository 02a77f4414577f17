package geo

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrRegionIsNotConstructed is returned when using an improperly initialized Region.
	ErrRegionIsNotConstructed = errors.New("Region must be created via NewRegion constructor")
	// ErrRegionNameIsRequired is returned when attempting to create a region without a name.
	ErrRegionNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Region is the top level of the geographic hierarchy. It owns zones and
// carries only identity, a display name, and an administrative status.
// Regions are configuration data: created by administrators and rarely mutated.
type Region struct {
	id     kernel.UUID
	name   string
	status Status

	isConstructed bool
}

// NewRegion creates a new Region with the given identity, name, and status.
// Returns a validation error if the ID is invalid, the name is empty, or the
// status is not a valid administrative status.
func NewRegion(id kernel.UUID, name string, status Status) (*Region, error) {
	region := &Region{
		isConstructed: true,
	}

	if err := errors.Join(
		region.setID(id),
		region.setName(name),
		region.setStatus(status),
	); err != nil {
		return nil, err
	}

	return region, nil
}

// Validate ensures the Region instance was properly constructed through NewRegion.
func (r *Region) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRegionIsNotConstructed
	}
	return nil
}

// ID returns the region's unique identifier.
func (r *Region) ID() kernel.UUID {
	return r.id
}

// Name returns the region's display name.
func (r *Region) Name() string {
	return r.name
}

// Status returns the region's administrative status.
func (r *Region) Status() Status {
	return r.status
}

func (r *Region) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Region) setName(name string) error {
	if name == "" {
		return ErrRegionNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Region) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
