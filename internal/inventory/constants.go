package inventory

// DefaultHasQuantity is the quantity HasItem checks when none is given
const DefaultHasQuantity int64 = 1

// Log messages
const (
	LogMsgItemAdded        = "Item added to inventory"
	LogMsgItemRemoved      = "Item removed from inventory"
	LogMsgItemUsed         = "Item used"
	LogMsgItemBought       = "Item bought"
	LogMsgItemOnCooldown   = "Item use rejected: on cooldown"
	LogMsgPurchaseRejected = "Item purchase rejected: insufficient chips"
)

// Error format strings
const (
	ErrFmtQuantityHeld = "%w: have %d, need %d"
	ErrFmtChipsHeld    = "%w: have %d chips, need %d"
)
