// Package quote contains the multi-source order quote: the output of routing.
// An OrderQuote splits a customer order into SubOrders, each bound to exactly
// one source (one vendor or the dark store) with its own subtotal, delivery
// fee, and ETA. Quotes and their inventory reservations are transactional
// data, the high-frequency-write side of the core.
package quote
