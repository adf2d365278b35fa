package models

type Store struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	IsActive      bool   `json:"isActive,omitempty"`
	ProductCount  int    `json:"productCount,omitempty"`
	PurchaseCount int    `json:"purchaseCount,omitempty"`
	SaleCount     int    `json:"saleCount,omitempty"`
}
