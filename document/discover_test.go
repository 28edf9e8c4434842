package document

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := []string{
		"/home/project/graphql/GetUser.graphql",
		"/home/project/graphql/nested/ListUsers.graphql",
		"/home/project/graphql/nested/deep/DeleteUser.graphql",
		"/home/project/graphql/README.md",
		"/home/project/graphql/schema.json",
	}
	for _, f := range files {
		if err := afero.WriteFile(fs, f, []byte("query {}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func TestDiscover(t *testing.T) {
	fs := testFs(t)

	s, err := Discover(fs, "/home/project/graphql", ".graphql")
	if err != nil {
		t.Fatalf("unexpected error when discovering documents: %s", err)
	}

	if s.Len() != 3 {
		t.Fatalf("expected 3 documents but got: %d", s.Len())
	}
	for _, f := range s.Files {
		if f == "/home/project/graphql/README.md" || f == "/home/project/graphql/schema.json" {
			t.Errorf("non-document file was collected: %s", f)
		}
	}
}

func TestDiscover_Deterministic(t *testing.T) {
	fs := testFs(t)

	a, err := Discover(fs, "/home/project/graphql", "graphql")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Discover(fs, "/home/project/graphql", "graphql")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a.Files, b.Files) {
		t.Fatalf("walk order is not stable: %v vs %v", a.Files, b.Files)
	}
}

func TestDiscover_NotADirectory(t *testing.T) {
	fs := testFs(t)

	testCases := []struct {
		Name string
		Root string
	}{
		{Name: "Missing", Root: "/home/project/nope"},
		{Name: "File", Root: "/home/project/graphql/GetUser.graphql"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			_, err := Discover(fs, testCase.Root, ".graphql")
			if !errors.Is(err, ErrNotADirectory) {
				subT.Errorf("expected ErrNotADirectory but got: %v", err)
			}
		})
	}
}

func TestDiscover_Empty(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/home/project/graphql", 0755)

	_, err := Discover(fs, "/home/project/graphql", ".graphql")
	if !errors.Is(err, ErrNoDocumentsFound) {
		t.Fatalf("expected ErrNoDocumentsFound but got: %v", err)
	}
}

func TestSet_Rel(t *testing.T) {
	fs := testFs(t)

	s, err := Discover(fs, "/home/project/graphql", ".graphql")
	if err != nil {
		t.Fatal(err)
	}

	for i := range s.Files {
		rel := s.Rel(i)
		if rel == "" || rel[0] == '/' {
			t.Errorf("expected a relative path but got: %s", rel)
		}
	}
}
