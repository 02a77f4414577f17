// Package inventory contains per-source stock records and the SourceChoice
// value the selector produces for each line item. InventoryRecord is one of
// only two high-frequency-write entities in the core; its stock check and
// decrement are a single serializable unit at the storage layer so two
// concurrent orders can never both observe sufficient stock and oversell.
package inventory
