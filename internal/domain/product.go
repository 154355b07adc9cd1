package domain

// ProductKey identifies a product within a shop. Two products with the
// same name but different descriptions are distinct entries.
type ProductKey struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StockRecord holds the on-hand quantity and unit price of one catalog entry.
type StockRecord struct {
	Quantity int      `json:"quantity"`
	Price    Centavos `json:"price"`
}

// CatalogEntry pairs a product key with its stock record for listings.
type CatalogEntry struct {
	Key    ProductKey  `json:"product"`
	Record StockRecord `json:"stock"`
}
