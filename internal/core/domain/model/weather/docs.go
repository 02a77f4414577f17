// Package weather contains the per-zone weather rules that adjust delivery
// terms: fee overrides, ETA multipliers, and full service suspension.
//
// Rules are append-and-supersede: an external ingestion job records new
// conditions, the latest rule by timestamp wins, and older rules are history,
// never merged. Applying the same condition twice is a no-op, so the ingestion
// job can re-deliver signals safely.
package weather
