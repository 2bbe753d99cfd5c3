package ozon

import (
	"strconv"

	"github.com/lolikeketon/seller-apis/core/reconcile"
)

// Visibility filter value requesting every offer of the account.
const visibilityAll = "ALL"

type productListRequest struct {
	Filter productListFilter `json:"filter"`
	LastID string            `json:"last_id"`
	Limit  int               `json:"limit"`
}

type productListFilter struct {
	Visibility string `json:"visibility"`
}

type productListResponse struct {
	Result productListResult `json:"result"`
}

type productListResult struct {
	Items  []productListItem `json:"items"`
	Total  int               `json:"total"`
	LastID string            `json:"last_id"`
}

type productListItem struct {
	OfferID string `json:"offer_id"`
}

type stockImportRequest struct {
	Stocks []stockItem `json:"stocks"`
}

type stockItem struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

type priceImportRequest struct {
	Prices []priceItem `json:"prices"`
}

// priceItem mirrors the import/prices wire format: prices travel as digit
// strings and old_price "0" resets any previous strikethrough price.
type priceItem struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

func stockPayload(batch []reconcile.StockUpdate) stockImportRequest {
	stocks := make([]stockItem, 0, len(batch))
	for _, u := range batch {
		stocks = append(stocks, stockItem{OfferID: u.SKU, Stock: u.Quantity})
	}
	return stockImportRequest{Stocks: stocks}
}

func pricePayload(batch []reconcile.PriceUpdate) priceImportRequest {
	prices := make([]priceItem, 0, len(batch))
	for _, u := range batch {
		prices = append(prices, priceItem{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      "RUB",
			OfferID:           u.SKU,
			OldPrice:          "0",
			Price:             strconv.Itoa(u.Price),
		})
	}
	return priceImportRequest{Prices: prices}
}
