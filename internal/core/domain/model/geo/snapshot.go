package geo

import (
	"fmt"

	"grocery/internal/core/domain/model/kernel"
)

// Snapshot is an immutable, versioned view of the geographic hierarchy used by
// the geofence resolver. Configuration changes never mutate a snapshot in
// place: a new snapshot is built from storage and atomically swapped in, so
// every in-flight resolution runs against one consistent generation of
// polygons.
//
// Snapshot construction is also where cross-entity configuration problems are
// caught: areas pointing at unknown or inactive zones, and zones pointing at
// unknown or inactive regions, are excluded from resolution and reported as
// warnings for the caller to log. Resolution itself never fails on bad
// configuration.
type Snapshot struct {
	version uint64

	regionsByID map[kernel.UUID]*Region
	zonesByID   map[kernel.UUID]*Zone

	// areas holds only resolvable areas: valid polygon, active zone, active region.
	areas []*Area
}

// NewSnapshot builds a resolution snapshot of the given generation from the
// configured hierarchy. Areas belonging to unknown or inactive zones, and
// zones belonging to unknown or inactive regions, are excluded; each exclusion
// produces a warning describing the configuration problem.
func NewSnapshot(version uint64, regions []*Region, zones []*Zone, areas []*Area) (*Snapshot, []string) {
	var warnings []string

	snapshot := &Snapshot{
		version:     version,
		regionsByID: make(map[kernel.UUID]*Region, len(regions)),
		zonesByID:   make(map[kernel.UUID]*Zone, len(zones)),
		areas:       make([]*Area, 0, len(areas)),
	}

	for _, region := range regions {
		snapshot.regionsByID[region.ID()] = region
	}

	for _, zone := range zones {
		region, ok := snapshot.regionsByID[zone.RegionID()]
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("zone %s references unknown region %s", zone.ID(), zone.RegionID()))
			continue
		}
		if !region.Status().IsActive() {
			continue
		}
		snapshot.zonesByID[zone.ID()] = zone
	}

	for _, area := range areas {
		zone, ok := snapshot.zonesByID[area.ZoneID()]
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("area %s references unknown or inactive zone %s", area.ID(), area.ZoneID()))
			continue
		}
		if !zone.Status().IsActive() {
			continue
		}
		snapshot.areas = append(snapshot.areas, area)
	}

	return snapshot, warnings
}

// Version returns the snapshot generation, assigned monotonically on each rebuild.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// Areas returns the resolvable areas in this snapshot.
// The returned slice must not be mutated.
func (s *Snapshot) Areas() []*Area {
	return s.areas
}

// Zone returns the zone with the given ID, if it participates in this snapshot.
func (s *Snapshot) Zone(id kernel.UUID) (*Zone, bool) {
	zone, ok := s.zonesByID[id]
	return zone, ok
}

// Region returns the region with the given ID, if it participates in this snapshot.
func (s *Snapshot) Region(id kernel.UUID) (*Region, bool) {
	region, ok := s.regionsByID[id]
	return region, ok
}
