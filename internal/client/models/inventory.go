package models

type Inventory struct {
	ID        int64    `json:"id,omitempty"`
	Store     *Store   `json:"store,omitempty"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	CostPrice float64  `json:"costPrice"`
}
