package model

// PartCategory classifies an inventory part.
type PartCategory string

const (
	PartCategoryPart       PartCategory = "Peça"
	PartCategoryTire       PartCategory = "Pneu"
	PartCategoryFluid      PartCategory = "Fluído"
	PartCategoryConsumable PartCategory = "Consumível"
	PartCategoryOther      PartCategory = "Outro"
)

// Part is an inventory part. Stock is server-derived from the part's
// inventory items and transaction ledger; the client never computes it
// locally, it only caches what the server returns.
type Part struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Category     PartCategory `json:"category"`
	PartNumber   *string      `json:"part_number"`
	SerialNumber *string      `json:"serial_number"`
	Brand        *string      `json:"brand"`
	Stock        int          `json:"stock"`
	MinStock     int          `json:"min_stock"`
	Location     *string      `json:"location"`
	Notes        *string      `json:"notes"`
	PhotoURL     *string      `json:"photo_url"`
	Value        *float64     `json:"value"`
	InvoiceURL   *string      `json:"invoice_url"`
	LifespanKm   *float64     `json:"lifespan_km"`
}

// InventoryItemStatus is the lifecycle of a single physical item.
type InventoryItemStatus string

const (
	ItemAvailable InventoryItemStatus = "Disponível"
	ItemInUse     InventoryItemStatus = "Em Uso"
	ItemEndOfLife InventoryItemStatus = "Fim de Vida"
)

// InventoryItem is one physical unit of a part.
type InventoryItem struct {
	ID                   int64               `json:"id"`
	Status               InventoryItemStatus `json:"status"`
	PartID               int64               `json:"part_id"`
	InstalledOnVehicleID *int64              `json:"installed_on_vehicle_id"`
	CreatedAt            string              `json:"created_at"`
	InstalledAt          *string             `json:"installed_at"`
	Part                 *Part               `json:"part"`
}

// TransactionType labels an inventory ledger entry.
type TransactionType string

const (
	TransactionIn               TransactionType = "Entrada"
	TransactionOutForUse        TransactionType = "Saída para Uso"
	TransactionEndOfLife        TransactionType = "Fim de Vida"
	TransactionReturn           TransactionType = "Retorno"
	TransactionInitialAdjust    TransactionType = "Ajuste Inicial"
	TransactionManualAdjustment TransactionType = "Ajuste Manual"
)

// AddItemsPayload is the body for POST /parts/{id}/add-items. Quantity
// must be positive; the server rejects zero or negative amounts.
type AddItemsPayload struct {
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes,omitempty"`
}

// ItemStatusUpdate is the body for PUT /parts/items/{id}/set-status.
type ItemStatusUpdate struct {
	NewStatus        InventoryItemStatus `json:"new_status"`
	RelatedVehicleID *int64              `json:"related_vehicle_id,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
}

// InventoryTransaction is one append-only ledger entry with the stock
// snapshot after it was applied.
type InventoryTransaction struct {
	ID                    int64           `json:"id"`
	TransactionType       TransactionType `json:"transaction_type"`
	QuantityChange        *int            `json:"quantity_change"`
	StockAfterTransaction int             `json:"stock_after_transaction"`
	Notes                 *string         `json:"notes"`
	Timestamp             string          `json:"timestamp"`
	User                  *User           `json:"user"`
	RelatedVehicle        *Vehicle        `json:"related_vehicle"`
	RelatedUser           *User           `json:"related_user"`
	Part                  *Part           `json:"part"`
	Item                  *InventoryItem  `json:"item"`
}
