package domain

// Order is a pending reservation of stock. It is created at checkout with
// the quantity already deducted from the catalog and is never mutated
// afterwards, only removed on cancellation or delivery.
type Order struct {
	ID        string     `json:"order_id"`
	Buyer     string     `json:"buyer"`
	Shop      string     `json:"shop"`
	Product   ProductKey `json:"product"`
	Quantity  int        `json:"quantity"`
	UnitPrice Centavos   `json:"unit_price"`
	Total     Centavos   `json:"total"`
	Address   string     `json:"address"`
}
