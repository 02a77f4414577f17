// Package geo contains the geographic service-area hierarchy of the grocery platform.
// A Region owns Zones, a Zone owns Areas, and every Area carries a closed polygon
// geofence tested against customer coordinates during resolution.
//
// The hierarchy is configuration data: administratively created, rarely mutated,
// and always consumed through immutable snapshots so in-flight resolutions never
// observe a half-updated polygon.
package geo
