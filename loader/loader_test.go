package loader

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolveInsideBaseDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.loader")
	defer teardown()
	//
	base := t.TempDir()
	r, err := NewFileResolver(base)
	if err != nil {
		t.Fatalf("cannot create resolver: %v", err)
	}
	path, err := r.Resolve("icons/marker.png")
	if err != nil {
		t.Fatalf("cannot resolve: %v", err)
	}
	if path != filepath.Join(base, "icons", "marker.png") {
		t.Errorf("unexpected resolved path %q", path)
	}
	// a file:// prefix is stripped
	path, err = r.Resolve("file://marker.png")
	if err != nil {
		t.Fatalf("cannot resolve file:// reference: %v", err)
	}
	if path != filepath.Join(base, "marker.png") {
		t.Errorf("unexpected resolved path %q", path)
	}
}

func TestResolveConfinement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.loader")
	defer teardown()
	//
	base := t.TempDir()
	r, err := NewFileResolver(base)
	if err != nil {
		t.Fatalf("cannot create resolver: %v", err)
	}
	for _, ref := range []string{
		"../secret.txt",
		"icons/../../secret.txt",
		"/etc/passwd",
	} {
		if _, err := r.Resolve(ref); !errors.Is(err, ErrOutsideBaseDir) {
			t.Errorf("expected %q to be rejected, have %v", ref, err)
		}
	}
	// ".." that stays inside is fine
	if _, err := r.Resolve("icons/../marker.png"); err != nil {
		t.Errorf("expected inside-reference to resolve, have %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.loader")
	defer teardown()
	//
	base := t.TempDir()
	doc := `{ "version": "1" }`
	if err := os.WriteFile(filepath.Join(base, "style.json"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	r, _ := NewFileResolver(base)
	l := New(r, nil)
	data, err := l.Load("style.json")
	if err != nil {
		t.Fatalf("cannot load: %v", err)
	}
	if string(data) != doc {
		t.Errorf("loaded bytes differ, have %q", data)
	}
	//
	if _, err := New(nil, nil).Load("style.json"); !errors.Is(err, ErrNoFileAccess) {
		t.Errorf("expected file reference without resolver to be rejected, have %v", err)
	}
}

func TestLoadHTTP(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.loader")
	defer teardown()
	//
	doc := `{ "version": "2" }`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/styles/rivers.json" {
			w.Write([]byte(doc))
			return
		}
		http.NotFound(w, req)
	}))
	defer srv.Close()
	//
	l := New(nil, srv.Client())
	data, err := l.Load(srv.URL + "/styles/rivers.json")
	if err != nil {
		t.Fatalf("cannot fetch: %v", err)
	}
	if string(data) != doc {
		t.Errorf("fetched bytes differ, have %q", data)
	}
	if _, err := l.Load(srv.URL + "/nope"); err == nil {
		t.Error("expected a non-200 response to be an error")
	}
}
