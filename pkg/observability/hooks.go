// Package observability lets a binary watch the card pipeline and the HTTP
// endpoint without the render packages importing any logging or metrics
// library.
//
// pkg/pipeline and pkg/server report events to whatever hooks are
// registered. Until a binary registers its own, the no-op implementations
// swallow every event. The toplangs CLI, for instance, turns pipeline events
// into debug log lines:
//
//	observability.SetPipelineHooks(logHooks{logger: logger})
//
// Registration belongs in main or a command's setup, before the first card
// is rendered.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the card pipeline.
type PipelineHooks interface {
	// OnRender fires after a card is assembled. layout is "normal" or
	// "compact"; languages counts the bars drawn.
	OnRender(ctx context.Context, layout string, languages int, duration time.Duration)

	// OnConvertStart and OnConvertComplete bracket a PNG or PDF conversion.
	// size is the output length in bytes.
	OnConvertStart(ctx context.Context, format string)
	OnConvertComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// HTTPHooks receives events from the card server.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks ignores every pipeline event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRender(context.Context, string, int, time.Duration)                 {}
func (NoopPipelineHooks) OnConvertStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnConvertComplete(context.Context, string, int, time.Duration, error) {}

// NoopHTTPHooks ignores every request.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	mu            sync.RWMutex
)

// SetPipelineHooks replaces the pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetHTTPHooks replaces the HTTP hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Pipeline returns the current pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipelineHooks
}

// HTTP returns the current HTTP hooks.
func HTTP() HTTPHooks {
	mu.RLock()
	defer mu.RUnlock()
	return httpHooks
}

// Reset reinstates the no-op hooks. Tests call it to undo registrations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	httpHooks = NoopHTTPHooks{}
}
