package schema

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
)

var testSchema = []byte(`{"data":{"__schema":{"types":[]}}}`)

func TestAcquire_LocalFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/home/project/schema.json", testSchema, 0644)
	fs.MkdirAll("/home/project/dir", 0755)

	a := NewAcquirer(fs)

	testCases := []struct {
		Name string
		Path string
		Err  error
	}{
		{Name: "Exists", Path: "/home/project/schema.json"},
		{Name: "Missing", Path: "/home/project/nope.json", Err: ErrMissingSchemaFile},
		{Name: "Directory", Path: "/home/project/dir", Err: ErrMissingSchemaFile},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			err := a.Acquire(context.Background(), Local(testCase.Path), "")
			if !errors.Is(err, testCase.Err) {
				subT.Errorf("expected error: %v but got: %v", testCase.Err, err)
			}
		})
	}
}

func TestAcquire_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			t.Errorf("expected POST introspection request but got: %s", req.Method)
		}
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		if h := req.Header.Get("Authorization"); h != "Bearer xyz" {
			t.Errorf("custom header was not merged in: %q", h)
		}
		w.Write(testSchema)
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	a := NewAcquirer(fs)

	headers := make(http.Header)
	headers.Add("Authorization", "Bearer xyz")

	dest := "/home/project/gen/schema.json"
	err := a.Acquire(context.Background(), Remote(srv.URL, headers, false), dest)
	if err != nil {
		t.Fatalf("unexpected error when acquiring remote schema: %s", err)
	}

	b, err := afero.ReadFile(fs, dest)
	if err != nil {
		t.Fatalf("unexpected error when reading schema file: %s", err)
	}
	if !bytes.Equal(b, testSchema) {
		t.Fatalf("schema file does not match response body: %s", b)
	}
}

func TestAcquire_RemoteOverwrites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write(testSchema)
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	dest := "/home/project/schema.json"
	afero.WriteFile(fs, dest, []byte("stale"), 0644)

	a := NewAcquirer(fs)
	if err := a.Acquire(context.Background(), Remote(srv.URL, nil, false), dest); err != nil {
		t.Fatalf("unexpected error when refreshing schema: %s", err)
	}

	b, _ := afero.ReadFile(fs, dest)
	if !bytes.Equal(b, testSchema) {
		t.Fatalf("stale schema file was not overwritten: %s", b)
	}
}

func TestAcquire_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	defer srv.Close()

	a := NewAcquirer(afero.NewMemMapFs())

	err := a.Acquire(context.Background(), Remote(srv.URL, nil, false), "/schema.json")
	if !errors.Is(err, ErrAcquisitionFailed) {
		t.Fatalf("expected acquisition failure for empty body but got: %v", err)
	}
}

func TestAcquire_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewAcquirer(afero.NewMemMapFs())

	err := a.Acquire(context.Background(), Remote(srv.URL, nil, false), "/schema.json")
	if !errors.Is(err, ErrAcquisitionFailed) {
		t.Fatalf("expected acquisition failure for 500 but got: %v", err)
	}
}

func TestAcquire_InsecureTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write(testSchema)
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	a := NewAcquirer(fs)

	// The test server certificate is self-signed, so the strict client
	// must reject it and the relaxed one must accept it.
	err := a.Acquire(context.Background(), Remote(srv.URL, nil, false), "/schema.json")
	if !errors.Is(err, ErrAcquisitionFailed) {
		t.Fatalf("expected certificate failure with strict TLS but got: %v", err)
	}

	err = a.Acquire(context.Background(), Remote(srv.URL, nil, true), "/schema.json")
	if err != nil {
		t.Fatalf("unexpected error with relaxed TLS: %s", err)
	}

	b, _ := afero.ReadFile(fs, "/schema.json")
	if !bytes.Equal(b, testSchema) {
		t.Fatalf("schema file does not match response body: %s", b)
	}
}
