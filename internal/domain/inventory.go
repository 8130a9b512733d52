package domain

// ChipsKey is the inventory field holding the casino chip balance
const ChipsKey = "fichas_cassino"

// InventoryItem is a single owned item entry. LastUsed is epoch milliseconds
// and nil until the item is used for the first time.
type InventoryItem struct {
	ItemID   string `json:"itemId"`
	Quantity int64  `json:"quantity"`
	LastUsed *int64 `json:"lastUsed"`
}

// Inventory is a user's full ledger state
type Inventory struct {
	UserID string                    `json:"userId"`
	Chips  int64                     `json:"fichas_cassino"`
	Items  map[string]*InventoryItem `json:"items"`
}

// ItemUse describes the outcome of consuming or activating an item
type ItemUse struct {
	ItemID          string `json:"item_id"`
	Effect          string `json:"effect,omitempty"`
	UsedAt          int64  `json:"used_at"`
	ActiveUntil     int64  `json:"active_until,omitempty"`
	RemainingAmount int64  `json:"remaining_quantity"`
}

// Purchase describes a store purchase paid with chips
type Purchase struct {
	ItemID      string `json:"item_id"`
	Quantity    int64  `json:"quantity"`
	TotalCost   int64  `json:"total_cost"`
	ChipBalance int64  `json:"chip_balance"`
}
