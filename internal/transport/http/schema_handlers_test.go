package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"formbuilder/internal/storage"

	"github.com/gorilla/mux"
)

// stubSchemaService implements only PublicSchema; the embedded interface
// covers the rest of FormServices, which the read endpoint never calls.
type stubSchemaService struct {
	FormServices
	document json.RawMessage
	err      error
}

func (s stubSchemaService) PublicSchema(_ context.Context, _ string) (json.RawMessage, error) {
	return s.document, s.err
}

func schemaRequest(handlers *SchemaHandlers, slug string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/forms/{slug}/", handlers.GetFormSchema).Methods(http.MethodGet)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/forms/"+slug+"/", nil))
	return recorder
}

func TestGetFormSchemaServesCachedDocument(t *testing.T) {
	document := json.RawMessage(`{"form":{"name":"Contact Us","slug":"contact-us"},"fields":[]}`)
	handlers := NewSchemaHandlers(stubSchemaService{document: document}, true)

	recorder := schemaRequest(handlers, "contact-us")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if got := recorder.Body.String(); got != string(document) {
		t.Fatalf("body = %s, want the cached document verbatim", got)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestGetFormSchemaNotFound(t *testing.T) {
	handlers := NewSchemaHandlers(stubSchemaService{err: storage.ErrNotFound}, true)

	recorder := schemaRequest(handlers, "missing")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", recorder.Code)
	}
}

func TestGetFormSchemaDisabledEndpoint(t *testing.T) {
	// Even an existing published form answers 404 while the flag is off.
	document := json.RawMessage(`{"form":{"slug":"contact-us"},"fields":[]}`)
	handlers := NewSchemaHandlers(stubSchemaService{document: document}, false)

	recorder := schemaRequest(handlers, "contact-us")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", recorder.Code)
	}
}
