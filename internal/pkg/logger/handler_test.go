package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"strings"
	"testing"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), TraceIDKey, "abc-123")
	l.InfoContext(ctx, "hello")

	if !strings.Contains(buf.String(), `"trace_id":"abc-123"`) {
		t.Fatalf("trace_id missing from %s", buf.String())
	}
}

func TestRemoteFilterHandlerDropsUntraced(t *testing.T) {
	var local, remote bytes.Buffer
	tee := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&local, nil),
		&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)},
	}}
	l := log.New(&ContextHandler{tee})

	l.Info("startup")
	if remote.Len() != 0 {
		t.Fatalf("untraced record reached remote: %s", remote.String())
	}
	if !strings.Contains(local.String(), "startup") {
		t.Fatalf("local handler missed record")
	}

	l.InfoContext(context.WithValue(context.Background(), TraceIDKey, "t1"), "request")
	if !strings.Contains(remote.String(), "request") {
		t.Fatalf("traced record did not reach remote")
	}
}
