package market

import (
	"time"

	"github.com/lolikeketon/seller-apis/core/reconcile"
)

// Stock item type reported for sellable units.
const stockTypeFit = "FIT"

// Currency code the Partner API expects for rouble prices.
const currencyRUR = "RUR"

type offerMappingResponse struct {
	Result offerMappingResult `json:"result"`
}

type offerMappingResult struct {
	OfferMappingEntries []offerMappingEntry `json:"offerMappingEntries"`
	Paging              paging              `json:"paging"`
}

type offerMappingEntry struct {
	Offer offerRef `json:"offer"`
}

type offerRef struct {
	ShopSKU string `json:"shopSku"`
}

type paging struct {
	NextPageToken string `json:"nextPageToken"`
}

type stockUpdateRequest struct {
	SKUs []stockSKU `json:"skus"`
}

type stockSKU struct {
	SKU         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []stockSlot `json:"items"`
}

type stockSlot struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

type priceUpdateRequest struct {
	Offers []offerPrice `json:"offers"`
}

type offerPrice struct {
	ID    string     `json:"id"`
	Price priceValue `json:"price"`
}

type priceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

func stockPayload(batch []reconcile.StockUpdate, warehouseID string, now time.Time) stockUpdateRequest {
	updatedAt := now.UTC().Truncate(time.Second).Format(time.RFC3339)

	skus := make([]stockSKU, 0, len(batch))
	for _, u := range batch {
		skus = append(skus, stockSKU{
			SKU:         u.SKU,
			WarehouseID: warehouseID,
			Items: []stockSlot{{
				Count:     u.Quantity,
				Type:      stockTypeFit,
				UpdatedAt: updatedAt,
			}},
		})
	}
	return stockUpdateRequest{SKUs: skus}
}

func pricePayload(batch []reconcile.PriceUpdate) priceUpdateRequest {
	offers := make([]offerPrice, 0, len(batch))
	for _, u := range batch {
		offers = append(offers, offerPrice{
			ID: u.SKU,
			Price: priceValue{
				Value:      u.Price,
				CurrencyID: currencyRUR,
			},
		})
	}
	return priceUpdateRequest{Offers: offers}
}
