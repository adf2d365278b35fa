package models

type TransactionType string

const (
	TransactionPurchase TransactionType = "PURCHASE"
	TransactionSale     TransactionType = "SALE"
)

type Transaction struct {
	ID              int64           `json:"id,omitempty"`
	Store           *Store          `json:"store,omitempty"`
	Product         *Product        `json:"product,omitempty"`
	Quantity        int             `json:"quantity"`
	Price           float64         `json:"price"`
	Type            TransactionType `json:"type"`
	TransactionDate string          `json:"transactionDate,omitempty"`
	Description     string          `json:"description,omitempty"`
}
