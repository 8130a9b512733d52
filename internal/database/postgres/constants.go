package postgres

// Error Messages
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
	ErrMsgUserIDEmpty              = "user id cannot be empty"
	ErrMsgItemIDEmpty              = "item id cannot be empty"
	ErrMsgPoolNil                  = "pool cannot be nil"
)
