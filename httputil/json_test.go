package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"name": "x"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["name"] != "x" {
		t.Errorf("body = %v, want name=x", body)
	}
}

func TestWriteJSON_ClampsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 999, map[string]string{})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, http.StatusBadRequest, "bad_value", "not a number")

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Error != "bad_value" || resp.Message != "not a number" {
		t.Errorf("response = %+v", resp)
	}
}

func TestBindJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		ok      bool
		errPart string
	}{
		{"valid", `{"name":"x"}`, true, ""},
		{"empty body", ``, false, "empty"},
		{"malformed", `{"name":`, false, "malformed JSON"},
		{"unknown field", `{"nope":1}`, false, "unknown field"},
		{"wrong type", `{"name":42}`, false, "invalid value"},
		{"multiple values", `{"name":"x"}{"name":"y"}`, false, "multiple JSON values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := BindJSON(req, &p)

			if tt.ok {
				if err != nil {
					t.Fatalf("BindJSON = %v, want nil", err)
				}
				if p.Name != "x" {
					t.Errorf("decoded name = %q, want x", p.Name)
				}
				return
			}
			if err == nil {
				t.Fatal("BindJSON = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error = %q, want it to mention %q", err, tt.errPart)
			}
		})
	}
}
