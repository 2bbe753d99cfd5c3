// Package ozon integrates with the Ozon Seller API: paginated product
// listing to obtain the known offer set, and batched stock/price imports.
package ozon
