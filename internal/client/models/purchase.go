package models

type Purchase struct {
	ID           int64     `json:"id,omitempty"`
	Product      *Product  `json:"product,omitempty"`
	Supplier     *Supplier `json:"supplier,omitempty"`
	Store        *Store    `json:"store,omitempty"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	PurchaseDate string    `json:"purchaseDate"`
	Description  string    `json:"description,omitempty"`
}

// PurchaseRequest is the flat creation payload.
type PurchaseRequest struct {
	ProductID    int64   `json:"productId"`
	SupplierID   int64   `json:"supplierId"`
	StoreID      int64   `json:"storeId"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	PurchaseDate string  `json:"purchaseDate"`
	Description  string  `json:"description,omitempty"`
}
