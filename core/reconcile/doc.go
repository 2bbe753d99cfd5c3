// Package reconcile implements the pure transformation at the heart of the
// synchronizer: matching vendor inventory rows against the set of SKUs a
// marketplace currently knows, and deriving the stock and price updates to
// push back.
//
// The package performs no I/O. Given the same inventory rows and the same
// known-SKU snapshot it always produces the same updates, and it never
// mutates its inputs, so a caller may reconcile the same snapshot for
// several purposes without defensive copying.
//
// # Reconciliation rules
//
//   - A row whose code the marketplace knows produces one StockUpdate and
//     one PriceUpdate. Duplicate rows for the same code are consumed once.
//   - A known SKU with no matching row produces a StockUpdate with quantity
//     zero and no PriceUpdate: the marketplace must stop selling it.
//   - A row whose code the marketplace does not know produces nothing.
//
// Batching for submission is handled by Partition, which splits an update
// list into contiguous chunks respecting a per-endpoint size limit.
package reconcile
