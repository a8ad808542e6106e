package handler

import (
	"StorySphere/internal/api/middleware"
	"StorySphere/internal/pkg/consts"
	"StorySphere/internal/pkg/response"
	"StorySphere/internal/service"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// paramID 解析路径中的数字 ID，失败时直接写回 400
func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return id, true
}

func currentUserID(c *gin.Context) uint64 {
	return c.GetUint64(middleware.UserIDKey)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}

// openImage 读取可选的上传图片字段，字段不存在时返回 nil
func openImage(c *gin.Context, field string) (io.ReadCloser, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if header.Size > consts.MaxUploadSize {
		return nil, service.ErrFileNotSupported
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, consts.MimePrefixImage) {
		return nil, service.ErrFileNotSupported
	}
	return header.Open()
}

// splitTags 表单中的 tags 可重复出现，也可用逗号分隔
func splitTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	res := make([]string, 0, len(tags))
	for _, t := range tags {
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				res = append(res, part)
			}
		}
	}
	return res
}
