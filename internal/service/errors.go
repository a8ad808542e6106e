package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("Invalid parameters")
	ErrMissingFields        = errors.New("All fields are required")
	ErrUserNotFound         = errors.New("User not found")
	ErrUserExist            = errors.New("Email already in use")
	ErrUsernameExist        = errors.New("Username already taken")
	ErrPasswordIncorrect    = errors.New("Invalid credentials")
	ErrTokenInvalid         = errors.New("Not authorized, token failed")
	ErrTokenMissing         = errors.New("Not authorized, no token")
	ErrFileNotSupported     = errors.New("Unsupported file type")
	ErrUserFollowSelf       = errors.New("You can't follow yourself")
	ErrStoryNotFound        = errors.New("Story not found")
	ErrStoryTitleRequired   = errors.New("Title is required")
	ErrChapterNotFound      = errors.New("Chapter not found")
	ErrChapterFieldsMissing = errors.New("Chapter title and content are required")
	ErrCommentEmpty         = errors.New("Comment content is required")
	ErrNotificationNotFound = errors.New("Notification not found")
	ErrForbidden            = errors.New("Not authorized")
	UnExpectedError         = errors.New("Something went wrong, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrMissingFields:        BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserExist:            BadRequest,
	ErrUsernameExist:        BadRequest,
	ErrPasswordIncorrect:    Unauthorized,
	ErrTokenInvalid:         Unauthorized,
	ErrTokenMissing:         Unauthorized,
	ErrFileNotSupported:     BadRequest,
	ErrUserFollowSelf:       BadRequest,
	ErrStoryNotFound:        NotFound,
	ErrStoryTitleRequired:   BadRequest,
	ErrChapterNotFound:      NotFound,
	ErrChapterFieldsMissing: BadRequest,
	ErrCommentEmpty:         BadRequest,
	ErrNotificationNotFound: NotFound,
	ErrForbidden:            Forbidden,
	UnExpectedError:         InternalServerError,
}

// StatusOf 返回错误对应的 HTTP 状态码，兼容被 %w 包装过的哨兵错误
func StatusOf(err error) (int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, true
	}
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return code, true
		}
	}
	return InternalServerError, false
}
