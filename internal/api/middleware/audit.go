package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const maxAuditBody = 16384

// 请求体含密码的接口不记录 body
var redactedPaths = map[string]struct{}{
	"/api/auth/register": {},
	"/api/auth/login":    {},
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < maxAuditBody {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		reqBody := auditRequestBody(c)

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", reqBody),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		resBody := w.body.String()
		if _, ok := redactedPaths[c.Request.URL.Path]; ok {
			resBody = "[redacted]"
		}
		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", resBody),
		)
	}
}

// auditRequestBody 读出 JSON 请求体后放回，multipart 上传只记录大小
func auditRequestBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return "[multipart " + c.GetHeader("Content-Length") + " bytes]"
	}
	if _, ok := redactedPaths[c.Request.URL.Path]; ok {
		return "[redacted]"
	}

	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	if len(body) > maxAuditBody {
		body = body[:maxAuditBody]
	}
	return string(body)
}
