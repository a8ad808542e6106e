package consts

const (
	TokenBlacklistKey = "auth:token:revoked:"
)

const (
	ChapterNumberLock = "lock:chapter:number:"
)
