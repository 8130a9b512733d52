package redis

// Error messages
const (
	ErrMsgUserIDEmpty  = "user id cannot be empty"
	ErrMsgItemIDEmpty  = "item id cannot be empty"
	ErrMsgClientNil    = "client cannot be nil"
	ErrMsgConfigNil    = "config cannot be nil"
	ErrMsgBadScriptRes = "unexpected script result"
)
