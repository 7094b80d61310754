package yuque

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestListRepositories(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":[{"id":1,"type":"Book","slug":"wiki","name":"Wiki","user_id":9}],"meta":{"total":1}}`))
	})

	repos, meta, err := client.ListRepositories(context.Background(), "alice", RepoTypeBook, 0, 0)
	if err != nil {
		t.Fatalf("ListRepositories() error = %v", err)
	}

	if gotPath != "/api/v2/users/alice/repos" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "limit=20&offset=0&type=Book" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(repos) != 1 || repos[0].Name != "Wiki" {
		t.Errorf("repos = %+v", repos)
	}
	if meta.Total(-1) != 1 {
		t.Errorf("meta total = %d, want 1", meta.Total(-1))
	}
}

func TestListRepositories_NoTypeFilter(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":[],"meta":{}}`))
	})

	if _, _, err := client.ListRepositories(context.Background(), "alice", "", 40, 10); err != nil {
		t.Fatalf("ListRepositories() error = %v", err)
	}
	if gotQuery != "limit=10&offset=40" {
		t.Errorf("query = %q, want no type param", gotQuery)
	}
}

func TestGetRepository(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":{"id":7,"type":"Book","slug":"wiki","name":"Wiki","user_id":9,"namespace":"alice/wiki"}}`))
	})

	repo, err := client.GetRepository(context.Background(), "alice/wiki")
	if err != nil {
		t.Fatalf("GetRepository() error = %v", err)
	}
	if gotPath != "/api/v2/repos/alice/wiki" {
		t.Errorf("path = %q", gotPath)
	}
	if repo.ID != 7 || *repo.Namespace != "alice/wiki" {
		t.Errorf("repo = %+v", repo)
	}
}

func TestCreateRepository(t *testing.T) {
	var gotMethod string
	var gotBody map[string]json.RawMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"data":{"id":3,"type":"Book","slug":"notes","name":"Notes","user_id":9}}`))
	})

	repo, err := client.CreateRepository(context.Background(), "alice", RepositoryCreate{
		Name: "Notes", Slug: "notes", Public: VisibilityPrivate,
	})
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if _, ok := gotBody["description"]; ok {
		t.Error("description should not be sent when unset")
	}
	if string(gotBody["public"]) != "0" {
		t.Errorf("public = %s, want 0", gotBody["public"])
	}
	if repo.ID != 3 {
		t.Errorf("repo.ID = %d, want 3", repo.ID)
	}
}

func TestUpdateRepository_PartialPayload(t *testing.T) {
	var gotMethod string
	var gotBody map[string]json.RawMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"data":{"id":7,"type":"Book","slug":"wiki","name":"Renamed","user_id":9}}`))
	})

	name := "Renamed"
	if _, err := client.UpdateRepository(context.Background(), "7", RepositoryUpdate{Name: &name}); err != nil {
		t.Fatalf("UpdateRepository() error = %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %q, want PUT", gotMethod)
	}
	if len(gotBody) != 1 {
		t.Errorf("body keys = %v, want only name", gotBody)
	}
}

func TestDeleteRepository(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":{"id":7,"type":"Book","slug":"wiki","name":"Wiki","user_id":9}}`))
	})

	repo, err := client.DeleteRepository(context.Background(), "7")
	if err != nil {
		t.Fatalf("DeleteRepository() error = %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/v2/repos/7" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if repo.Slug != "wiki" {
		t.Errorf("repo = %+v", repo)
	}
}
