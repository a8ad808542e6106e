package logger

import (
	"StorySphere/internal/api/config"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		Formatter: accessLogFormatter,
	}))

	r.Use(gin.Recovery())
}

func accessLogFormatter(p gin.LogFormatterParams) string {
	var traceID string
	if id, ok := p.Keys[TraceIDKey].(string); ok {
		traceID = id
	}
	if traceID == "" && p.Request != nil {
		traceID = TraceID(p.Request.Context())
	}

	var index string
	if config.Cfg != nil {
		index = config.Cfg.Logstash.Index
	}

	return fmt.Sprintf(
		`{"time":"%s","level":"INFO","msg":"GIN_ACCESS","trace_id":"%s","target_index":"%s","method":"%s","path":"%s","status":%d,"latency":"%v","client_ip":"%s"}`+"\n",
		p.TimeStamp.Format(time.RFC3339),
		traceID,
		index,
		p.Method,
		p.Path,
		p.StatusCode,
		p.Latency,
		p.ClientIP,
	)
}
