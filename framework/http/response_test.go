package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gohttp "github.com/km-arc/go-container/framework/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

// ── JSON responses ───────────────────────────────────────────────────────────

func TestResponse_Success(t *testing.T) {
	rr := httptest.NewRecorder()
	gohttp.NewResponse(rr).Success(map[string]any{"id": 1})

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}
	body := decode(t, rr)
	if _, ok := body["data"]; !ok {
		t.Error(`expected "data" envelope`)
	}
}

func TestResponse_Created(t *testing.T) {
	rr := httptest.NewRecorder()
	gohttp.NewResponse(rr).Created(map[string]any{"id": 1})

	if rr.Code != http.StatusCreated {
		t.Errorf("status: got %d want 201", rr.Code)
	}
}

func TestResponse_NoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	gohttp.NewResponse(rr).NoContent()

	if rr.Code != http.StatusNoContent {
		t.Errorf("status: got %d want 204", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Error("expected empty body")
	}
}

func TestResponse_Error(t *testing.T) {
	rr := httptest.NewRecorder()
	gohttp.NewResponse(rr).Error(http.StatusBadRequest, "bad input")

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d want 400", rr.Code)
	}
	if got := decode(t, rr)["message"]; got != "bad input" {
		t.Errorf("message: got %q", got)
	}
}

func TestResponse_NotFoundDefaultMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	gohttp.NewResponse(rr).NotFound()

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d want 404", rr.Code)
	}
	if got := decode(t, rr)["message"]; got != "Not found." {
		t.Errorf("message: got %q", got)
	}
}

func TestResponse_NotFoundCustomMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	gohttp.NewResponse(rr).NotFound("no such user")

	if got := decode(t, rr)["message"]; got != "no such user" {
		t.Errorf("message: got %q", got)
	}
}
