package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/versescope/versescope/pkg/catalog"
	"github.com/versescope/versescope/pkg/fragments"
	"github.com/versescope/versescope/pkg/reference"
	"github.com/versescope/versescope/pkg/session"
)

// stubFetcher answers every fetch with one fragment per selected module.
type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context, sel catalog.Selection, ref reference.Reference) ([]fragments.TextFragment, error) {
	var out []fragments.TextFragment
	for _, t := range sel {
		out = append(out, fragments.TextFragment{
			ParallelID: 1,
			ModuleID:   t.ModuleID,
			RID:        ref.Chapter*1000 + 1,
			Segment:    fragments.Plain(t.ShortName + " " + ref.String()),
		})
	}
	return out, nil
}

func newTestServer(user, pass string) (*Server, *session.Controller) {
	cat := catalog.Default()
	sel, _ := cat.Select("UST")
	ctrl := session.New(context.Background(), stubFetcher{}, sel, reference.Default(), session.Options{})
	return New(ctrl, cat, user, pass), ctrl
}

func do(t *testing.T, h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) session.View {
	t.Helper()
	var v session.View
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestEventsDriveController(t *testing.T) {
	srv, ctrl := newTestServer("", "")
	h := srv.Handler()

	rec := do(t, h, "POST", "/api/selection", url.Values{"translations": {"NET,UST"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("selection: status %d: %s", rec.Code, rec.Body.String())
	}
	if v := decodeView(t, rec); v.State != "idle" || strings.Join(v.Selection, ",") != "UST,NET" {
		t.Fatalf("unexpected view after selection: %+v", v)
	}

	rec = do(t, h, "POST", "/api/reference", url.Values{"book": {"exodus"}, "chapter": {"3"}})
	if v := decodeView(t, rec); v.Reference != "Exodus 3" {
		t.Fatalf("unexpected view after reference: %+v", v)
	}

	rec = do(t, h, "POST", "/api/fetch", nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("fetch: status %d", rec.Code)
	}
	ctrl.Wait()

	v := decodeView(t, do(t, h, "GET", "/api/state", nil))
	if v.State != "ready" || len(v.Columns) != 2 {
		t.Fatalf("unexpected ready view: %+v", v)
	}
	if e := v.Columns[1].Entries[0]; e.Label != "3:1 " || e.Content != "NET Exodus 3" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestPageRendersColumns(t *testing.T) {
	srv, ctrl := newTestServer("", "")
	h := srv.Handler()

	ctrl.RequestFetch()
	ctrl.Wait()

	rec := do(t, h, "GET", "/", nil)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("unparseable page: %v", err)
	}
	if doc.Find(".column").Length() != 1 {
		t.Fatalf("expected one column")
	}
	if got := doc.Find(".verse").Text(); got != "1:1 UST Genesis 1" {
		t.Fatalf("unexpected verse %q", got)
	}
}

func TestBadRequests(t *testing.T) {
	srv, _ := newTestServer("", "")
	h := srv.Handler()

	tests := []struct {
		target string
		form   url.Values
	}{
		{"/api/reference", url.Values{"book": {"Genesis"}, "chapter": {"x"}}},
		{"/api/reference", url.Values{"book": {"Hezekiah"}, "chapter": {"1"}}},
		{"/api/reference", url.Values{"book": {"Genesis"}, "chapter": {"0"}}},
		{"/api/selection", url.Values{"translations": {"UST,KJV"}}},
	}
	for _, tc := range tests {
		if rec := do(t, h, "POST", tc.target, tc.form); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s %v: expected 400, got %d", tc.target, tc.form, rec.Code)
		}
	}

	if rec := do(t, h, "GET", "/api/fetch", nil); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestBasicAuth(t *testing.T) {
	srv, _ := newTestServer("reader", "secret")
	h := srv.Handler()

	if rec := do(t, h, "GET", "/api/state", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	req := httptest.NewRequest("GET", "/api/state", nil)
	req.SetBasicAuth("reader", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
