package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTermsMatchesCaseInsensitive(t *testing.T) {
	var created []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wp-json/jwt-auth/v1/token":
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/wp-json/wp/v2/categories" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]term{{ID: 7, Name: "Tech"}, {ID: 9, Name: "Go"}})
		case r.URL.Path == "/wp-json/wp/v2/categories" && r.Method == http.MethodPost:
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			created = append(created, body["name"])
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(term{ID: 100 + len(created), Name: body["name"]})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "admin", "secret")
	ids, unresolved := c.ResolveTerms(context.Background(), TermCategory, []string{"tech", "GO", "Brand New"})

	if len(unresolved) != 0 {
		t.Fatalf("expected no unresolved terms, got %v", unresolved)
	}
	if len(ids) != 3 || ids[0] != 7 || ids[1] != 9 || ids[2] != 101 {
		t.Errorf("unexpected ids %v", ids)
	}
	if len(created) != 1 || created[0] != "Brand New" {
		t.Errorf("expected only the missing term to be created, got %v", created)
	}
}

func TestResolveTermsDegradesOnCreationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wp-json/jwt-auth/v1/token":
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/wp-json/wp/v2/tags" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]term{{ID: 3, Name: "golang"}})
		case r.URL.Path == "/wp-json/wp/v2/tags" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "admin", "secret")
	ids, unresolved := c.ResolveTerms(context.Background(), TermTag, []string{"golang", "forbidden-tag"})

	// The batch never aborts; the failing name is reported, the rest resolve
	if len(ids) != 1 || ids[0] != 3 {
		t.Errorf("expected the existing tag to resolve, got %v", ids)
	}
	if len(unresolved) != 1 || unresolved[0] != "forbidden-tag" {
		t.Errorf("expected forbidden-tag unresolved, got %v", unresolved)
	}
}

func TestResolveTermsEmptyInput(t *testing.T) {
	c := NewClient("https://example.com", "admin", "secret")
	ids, unresolved := c.ResolveTerms(context.Background(), TermCategory, nil)
	if ids != nil || unresolved != nil {
		t.Errorf("expected no work for empty input, got %v %v", ids, unresolved)
	}
}
