package yuque

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

// stubAPI routes stub responses by path prefix and counts requests per route.
type stubAPI struct {
	routes map[string]http.HandlerFunc
	calls  map[string]int
}

func newStubAPI() *stubAPI {
	return &stubAPI{routes: map[string]http.HandlerFunc{}, calls: map[string]int{}}
}

func (s *stubAPI) on(prefix string, handler http.HandlerFunc) {
	s.routes[prefix] = handler
}

func (s *stubAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Longest prefix wins so /repos/7 does not shadow /repos/7/toc.
		var best string
		for prefix := range s.routes {
			if strings.HasPrefix(r.URL.Path, prefix) && len(prefix) > len(best) {
				best = prefix
			}
		}
		if best == "" {
			http.NotFound(w, r)
			return
		}
		s.calls[best]++
		s.routes[best](w, r)
	}
}

func TestGetMyRepositories(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/user", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":9,"login":"alice","name":"Alice"}}`))
	})
	api.on("/api/v2/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"type":"Book","slug":"wiki","name":"Wiki","user_id":9}],"meta":{"total":1}}`))
	})
	client := newTestClient(t, api.handler())

	got, err := client.GetMyRepositories(context.Background(), "", 0, 0)
	if err != nil {
		t.Fatalf("GetMyRepositories() error = %v", err)
	}

	if got.User.Login != "alice" {
		t.Errorf("User.Login = %q", got.User.Login)
	}
	if len(got.Repositories) != 1 {
		t.Errorf("len(Repositories) = %d, want 1", len(got.Repositories))
	}
	if got.Meta.Total(-1) != 1 {
		t.Errorf("Meta total = %d, want 1", got.Meta.Total(-1))
	}
}

func TestGetMyRepositories_RepoStepFails(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/user", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":9,"login":"alice","name":"Alice"}}`))
	})
	api.on("/api/v2/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"denied"}`))
	})
	client := newTestClient(t, api.handler())

	// No partial result for this operation.
	if _, err := client.GetMyRepositories(context.Background(), "", 0, 0); err == nil {
		t.Fatal("GetMyRepositories() expected error, got nil")
	}
}

func TestGetRepositoryOverview(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/repos/7/toc", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"uuid":"a1","type":"DOC","title":"Intro","doc_id":42}]}`))
	})
	api.on("/api/v2/repos/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":7,"type":"Book","slug":"wiki","name":"Wiki","user_id":9}}`))
	})
	client := newTestClient(t, api.handler())

	got, err := client.GetRepositoryOverview(context.Background(), "7")
	if err != nil {
		t.Fatalf("GetRepositoryOverview() error = %v", err)
	}
	if got.Repository.Name != "Wiki" {
		t.Errorf("Repository.Name = %q", got.Repository.Name)
	}
	if len(got.TOC) != 1 || got.TOC[0].UUID != "a1" {
		t.Errorf("TOC = %+v", got.TOC)
	}
}

func TestGetRepositoryOverview_TOCStepFails(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/repos/7/toc", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no toc"}`))
	})
	api.on("/api/v2/repos/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":7,"type":"Book","slug":"wiki","name":"Wiki","user_id":9}}`))
	})
	client := newTestClient(t, api.handler())

	if _, err := client.GetRepositoryOverview(context.Background(), "7"); err == nil {
		t.Fatal("GetRepositoryOverview() expected error, got nil")
	}
}

func TestSearchAndRead(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":42,"type":"doc","title":"Deploy","url":"/x"}],"meta":{"total":1}}`))
	})
	api.on("/api/v2/repos/7/docs/42", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":42,"slug":"deploy","title":"Deploy","book_id":7,"user_id":9,"body":"steps"}}`))
	})
	client := newTestClient(t, api.handler())

	got, err := client.SearchAndRead(context.Background(), "deploy", "7", true)
	if err != nil {
		t.Fatalf("SearchAndRead() error = %v", err)
	}
	if len(got.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(got.Results))
	}
	if got.FirstDocument == nil || *got.FirstDocument.Body != "steps" {
		t.Errorf("FirstDocument = %+v", got.FirstDocument)
	}
}

func TestSearchAndRead_NoResults(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"meta":{"total":0}}`))
	})
	api.on("/api/v2/repos/", func(w http.ResponseWriter, r *http.Request) {
		t.Error("document fetch should not happen for empty search results")
	})
	client := newTestClient(t, api.handler())

	got, err := client.SearchAndRead(context.Background(), "nothing", "7", true)
	if err != nil {
		t.Fatalf("SearchAndRead() error = %v", err)
	}
	if len(got.Results) != 0 || got.FirstDocument != nil {
		t.Errorf("got = %+v, want empty result", got)
	}
}

func TestSearchAndRead_ReadFirstDisabled(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":42,"type":"doc","title":"Deploy","url":"/x"}],"meta":{}}`))
	})
	api.on("/api/v2/repos/", func(w http.ResponseWriter, r *http.Request) {
		t.Error("document fetch should not happen when readFirst is false")
	})
	client := newTestClient(t, api.handler())

	got, err := client.SearchAndRead(context.Background(), "deploy", "7", false)
	if err != nil {
		t.Fatalf("SearchAndRead() error = %v", err)
	}
	if got.FirstDocument != nil {
		t.Errorf("FirstDocument = %+v, want nil", got.FirstDocument)
	}
}

func TestSearchAndRead_FirstDocumentUnreadable(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":42,"type":"doc","title":"Deploy","url":"/x"}],"meta":{"total":1}}`))
	})
	api.on("/api/v2/repos/7/docs/42", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"denied"}`))
	})
	client := newTestClient(t, api.handler())

	// The enrichment step failing must not fail the search.
	got, err := client.SearchAndRead(context.Background(), "deploy", "7", true)
	if err != nil {
		t.Fatalf("SearchAndRead() error = %v", err)
	}
	if len(got.Results) != 1 {
		t.Errorf("len(Results) = %d, want 1", len(got.Results))
	}
	if got.FirstDocument != nil {
		t.Errorf("FirstDocument = %+v, want nil", got.FirstDocument)
	}
}

func TestSearchAndRead_SearchFails(t *testing.T) {
	api := newStubAPI()
	api.on("/api/v2/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"slow down"}`))
	})
	client := newTestClient(t, api.handler())

	if _, err := client.SearchAndRead(context.Background(), "deploy", "7", true); err == nil {
		t.Fatal("SearchAndRead() expected error, got nil")
	}
}
