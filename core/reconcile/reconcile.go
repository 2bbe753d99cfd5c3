package reconcile

import "errors"

// Reconcile matches inventory rows against the SKUs a marketplace currently
// knows and derives the updates to submit.
//
// Every SKU in known appears in exactly one StockUpdate: matched rows carry
// their normalized quantity, unmatched SKUs are zeroed out. PriceUpdates are
// produced for matched rows only. Rows whose code the marketplace does not
// know are dropped. The known slice is never mutated; matching is tracked in
// an internal set, so repeated calls with the same inputs yield identical
// results.
//
// The first descriptor that fails normalization aborts the run with a
// ParseError naming the offending product.
func Reconcile(rows []Row, known []string) ([]StockUpdate, []PriceUpdate, error) {
	unmatched := make(map[string]struct{}, len(known))
	for _, sku := range known {
		unmatched[sku] = struct{}{}
	}

	stocks := make([]StockUpdate, 0, len(known))
	prices := make([]PriceUpdate, 0, len(rows))

	for _, row := range rows {
		if _, ok := unmatched[row.Code]; !ok {
			// Either the marketplace never listed this code, or a duplicate
			// row already consumed it.
			continue
		}

		quantity, err := NormalizeQuantity(row.Quantity)
		if err != nil {
			return nil, nil, tagCode(err, row.Code)
		}
		price, err := NormalizePrice(row.Price)
		if err != nil {
			return nil, nil, tagCode(err, row.Code)
		}

		stocks = append(stocks, StockUpdate{SKU: row.Code, Quantity: quantity})
		prices = append(prices, PriceUpdate{SKU: row.Code, Price: price})
		delete(unmatched, row.Code)
	}

	// Zero out what the marketplace still lists but the feed no longer
	// carries. Iterating known (not the set) keeps the caller's order and
	// makes the output deterministic.
	for _, sku := range known {
		if _, ok := unmatched[sku]; !ok {
			continue
		}
		delete(unmatched, sku)
		stocks = append(stocks, StockUpdate{SKU: sku, Quantity: 0})
	}

	return stocks, prices, nil
}

// NonZero returns the subset of updates with available stock, preserving
// order. Used for run reports that distinguish sellable offers from the
// full update set.
func NonZero(stocks []StockUpdate) []StockUpdate {
	inStock := make([]StockUpdate, 0, len(stocks))
	for _, s := range stocks {
		if s.Quantity != 0 {
			inStock = append(inStock, s)
		}
	}
	return inStock
}

// tagCode attaches the product code to a ParseError produced during
// normalization.
func tagCode(err error, code string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Code = code
	}
	return err
}
