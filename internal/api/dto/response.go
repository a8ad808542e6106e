package dto

// Response 统一返回体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ToggleDTO 切换类操作的结果，Action 为 followed/unfollowed/liked/unliked/bookmarked/removed
type ToggleDTO struct {
	Action  string    `json:"action"`
	Story   *StoryDTO `json:"story,omitempty"`
	Message string    `json:"-"`
}
