package models

type Product struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"imageUrl,omitempty"`

	CategoryID int64 `json:"categoryId,omitempty"`
	SupplierID int64 `json:"supplierId,omitempty"`
	StoreID    int64 `json:"storeId,omitempty"`

	// Denormalized names the backend includes on list views.
	CategoryName string `json:"categoryName,omitempty"`
	SupplierName string `json:"supplierName,omitempty"`
	StoreName    string `json:"storeName,omitempty"`
}
