package reconcile

// Row is one product line from the vendor inventory feed.
// Quantity and Price carry the raw spreadsheet text; normalization happens
// during reconciliation.
type Row struct {
	// Code is the vendor product code, matched against marketplace SKUs.
	Code string

	// Quantity is the raw quantity descriptor, e.g. "5", "1" or ">10".
	Quantity string

	// Price is the raw price descriptor, e.g. "5'990.00 руб.".
	Price string
}

// StockUpdate is the normalized stock level for one marketplace SKU.
type StockUpdate struct {
	// SKU is the marketplace identifier for the offer.
	SKU string

	// Quantity is the stock level to report. Always >= 0.
	Quantity int
}

// PriceUpdate is the normalized integer price for one marketplace SKU.
type PriceUpdate struct {
	// SKU is the marketplace identifier for the offer.
	SKU string

	// Price is the whole-unit price with all formatting stripped.
	Price int
}
