package models

// SaleRequest is the flat creation payload; SaleDate uses yyyy-MM-dd.
type SaleRequest struct {
	ProductID   int64   `json:"productId"`
	StoreID     int64   `json:"storeId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	SaleDate    string  `json:"saleDate"`
	Description string  `json:"description,omitempty"`
}

type Sale struct {
	ID          int64   `json:"id,omitempty"`
	ProductName string  `json:"productName,omitempty"`
	StoreName   string  `json:"storeName,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	SaleDate    string  `json:"saleDate"`
	Description string  `json:"description,omitempty"`
}
