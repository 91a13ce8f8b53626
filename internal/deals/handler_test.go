package deals

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"dealpulse/internal/model"
)

func doList(t *testing.T, target string) listResponse {
	t.Helper()
	r := newTestResolver("", "", "tag-20")
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	Handler(r)(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHandlerDefaults(t *testing.T) {
	resp := doList(t, "/deals")
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if resp.Count != len(resp.Deals) {
		t.Fatalf("count %d does not match %d deals", resp.Count, len(resp.Deals))
	}
	if resp.Count != defaultLimit {
		t.Fatalf("default limit should yield %d records from the catalog, got %d", defaultLimit, resp.Count)
	}
	if resp.Source != SourceFallback {
		t.Fatalf("no credential configured, source = %q, want fallback", resp.Source)
	}
}

func TestHandlerCategoryFilter(t *testing.T) {
	resp := doList(t, "/deals?category=beauty&limit=10")
	for _, d := range resp.Deals {
		if d.Category != model.CategoryBeauty {
			t.Fatalf("record %q has category %q, want beauty", d.ID, d.Category)
		}
	}
}

func TestHandlerLimitClamping(t *testing.T) {
	resp := doList(t, "/deals?limit=999")
	if resp.Count > maxLimit {
		t.Fatalf("limit must clamp to %d, got %d records", maxLimit, resp.Count)
	}

	resp = doList(t, "/deals?limit=-3")
	if resp.Count != 1 {
		t.Fatalf("negative limit must clamp to 1, got %d records", resp.Count)
	}

	resp = doList(t, "/deals?limit=abc")
	if resp.Count != defaultLimit {
		t.Fatalf("unparsable limit must use the default, got %d records", resp.Count)
	}
}

func TestHandlerUnknownCategoryIsEmptyNotError(t *testing.T) {
	resp := doList(t, "/deals?category=gadgets")
	if !resp.Success {
		t.Fatalf("unknown categories are a silent empty result, not an error")
	}
	if resp.Count != 0 || resp.Deals == nil {
		t.Fatalf("expected an empty non-nil list, got count=%d deals=%v", resp.Count, resp.Deals)
	}
}
