package consts

const (
	MimePrefixImage = "image"
)

// 通知类型
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeFollow  = "follow"
)

// 切换类操作结果
const (
	ActionFollowed   = "followed"
	ActionUnfollowed = "unfollowed"
	ActionLiked      = "liked"
	ActionUnliked    = "unliked"
	ActionBookmarked = "bookmarked"
	ActionRemoved    = "removed"
)

const (
	MaxImageWidth  = 1000
	MaxImageHeight = 1000
	MaxUploadSize  = 10 << 20
)

const (
	CoverObjectPrefix  = "covers/"
	AvatarObjectPrefix = "avatars/"
)
