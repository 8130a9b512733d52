package handler

// Generic HTTP error messages for client responses. They never carry
// internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// User-facing messages for mapped service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgInvalidUserError      = "Invalid user id"
	ErrMsgInvalidAmountError    = "Amount must be positive"
	ErrMsgInvalidGameError      = "Unknown game"
	ErrMsgInvalidBetError       = "Invalid bet option"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgInvalidCategoryError  = "Unknown item category"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgInsufficientItemsErr  = "Not enough items"
	ErrMsgNotEnoughChipsError   = "Not enough chips"
	ErrMsgItemNotUsableError    = "That item cannot be used"
	ErrMsgNotBuyableError       = "Item is not buyable"
	ErrMsgOnCooldownError       = "Action is on cooldown. Try again later"
	ErrMsgCurrencyUnavailableEr = "Currency ledger unavailable. Your chips were kept."
)

// Success messages
const (
	MsgHealthOK          = "ok"
	MsgHealthUnavailable = "unavailable"
	MsgStoreUnreachable  = "store connection failed"
)
