package economy

// Log messages
const (
	LogMsgCredited      = "Currency credited"
	LogMsgDebited       = "Currency debited"
	LogMsgDebitRejected = "Currency debit rejected: insufficient balance"
)
