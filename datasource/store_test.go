package datasource

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "data.db"))
	if err := s.Import(parseDoc(t)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	t.Run("scalars", func(t *testing.T) { checkScalars(t, s) })
	t.Run("lists", func(t *testing.T) { checkLists(t, s) })
	t.Run("tree", func(t *testing.T) { checkTree(t, s) })
}

func TestStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put("title", "Saved"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.PutList("items", []any{map[string]any{"n": 1}}); err != nil {
		t.Fatalf("PutList: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s = openStore(t, path)
	if got, _ := s.Text("title", nil); got != "Saved" {
		t.Errorf("Text(title) = %q after reopen", got)
	}
	if n, _ := s.ListLength("items", nil); n != 1 {
		t.Errorf("ListLength(items) = %d after reopen", n)
	}
}

func TestStorePutListReplaces(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "data.db"))
	items := []any{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
		map[string]any{"name": "c"},
	}
	if err := s.PutList("rows", items); err != nil {
		t.Fatal(err)
	}
	if n, _ := s.ListLength("rows", nil); n != 3 {
		t.Fatalf("ListLength = %d, want 3", n)
	}
	if err := s.PutList("rows", items[2:]); err != nil {
		t.Fatal(err)
	}
	if n, _ := s.ListLength("rows", nil); n != 1 {
		t.Fatalf("ListLength = %d after replace, want 1", n)
	}
	if got, _ := s.Text("name", nil); got != "" {
		t.Errorf("Text(name) outside list = %q", got)
	}
}

func TestStoreSequenceValue(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "data.db"))
	if err := s.Put("tags", []any{map[string]any{"t": "x"}, map[string]any{"t": "y"}}); err != nil {
		t.Fatal(err)
	}
	if n, ok := s.ListLength("tags", nil); !ok || n != 2 {
		t.Errorf("ListLength(tags) = %d, %t, want 2", n, ok)
	}
}

func TestStoreDeleteAndNames(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "data.db"))
	if err := s.Import(map[string]any{
		"b":    2,
		"a":    "x",
		"list": []any{},
	}); err != nil {
		t.Fatal(err)
	}

	names, err := s.Names()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "list"}, names); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if n, ok := s.ListLength("list", nil); !ok || n != 0 {
		t.Errorf("ListLength(list) = %d, %t, want empty list", n, ok)
	}

	for _, name := range []string{"a", "list", "never"} {
		if err := s.Delete(name); err != nil {
			t.Fatalf("Delete(%s): %v", name, err)
		}
	}
	names, _ = s.Names()
	if diff := cmp.Diff([]string{"b"}, names); diff != "" {
		t.Errorf("Names after Delete mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.ListLength("list", nil); ok {
		t.Error("deleted list still found")
	}
}
