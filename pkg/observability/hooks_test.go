package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	countStarts  int
	layoutStarts int
	renderStarts int
}

func (h *recordingPipelineHooks) OnCountStart(ctx context.Context, inputChars int) {
	h.countStarts++
}

func (h *recordingPipelineHooks) OnLayoutStart(ctx context.Context, wordCount int) {
	h.layoutStarts++
}

func (h *recordingPipelineHooks) OnRenderStart(ctx context.Context, formats []string) {
	h.renderStarts++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits   int
	misses int
	sets   int
}

func (h *recordingCacheHooks) OnCacheHit(ctx context.Context, keyType string)        { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(ctx context.Context, keyType string)       { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(ctx context.Context, keyType string, n int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Should not panic.
	Pipeline().OnCountStart(ctx, 100)
	Pipeline().OnCountComplete(ctx, 10, time.Millisecond, nil)
	Pipeline().OnLayoutStart(ctx, 10)
	Pipeline().OnLayoutComplete(ctx, 9, time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, []string{"svg"})
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)
	HTTP().OnRequest(ctx, "POST", "/v1/clouds")
	HTTP().OnResponse(ctx, "POST", "/v1/clouds", 200, time.Millisecond)
}

func TestSetPipelineHooks(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnCountStart(ctx, 50)
	Pipeline().OnLayoutStart(ctx, 5)
	Pipeline().OnLayoutStart(ctx, 5)
	Pipeline().OnRenderStart(ctx, []string{"png"})

	if rec.countStarts != 1 {
		t.Errorf("countStarts = %d, want 1", rec.countStarts)
	}
	if rec.layoutStarts != 2 {
		t.Errorf("layoutStarts = %d, want 2", rec.layoutStarts)
	}
	if rec.renderStarts != 1 {
		t.Errorf("renderStarts = %d, want 1", rec.renderStarts)
	}
}

func TestSetCacheHooks(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 512)
	Cache().OnCacheHit(ctx, "artifact")

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 1 {
		t.Errorf("hits/misses/sets = %d/%d/%d, want 1/1/1", rec.hits, rec.misses, rec.sets)
	}
}

func TestSetHooksIgnoresNil(t *testing.T) {
	Reset()
	defer Reset()

	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Pipeline() == nil || Cache() == nil || HTTP() == nil {
		t.Fatal("nil registration should keep the no-op defaults")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	Reset()

	Pipeline().OnCountStart(context.Background(), 1)
	if rec.countStarts != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
