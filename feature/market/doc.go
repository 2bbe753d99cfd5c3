// Package market integrates with the Yandex.Market Partner API: paginated
// offer-mapping listing to obtain the known SKU set, and batched stock and
// price updates for the FBS and DBS campaigns of one shop.
package market
