package registry

import (
	"testing"

	"github.com/vovakirdan/lanerunner/internal/config"
	"github.com/vovakirdan/lanerunner/internal/core"
	"github.com/vovakirdan/lanerunner/internal/runner"
)

func init() {
	Register("test-short", func() runner.SegmentKind {
		return runner.SegmentKind{
			Length: 6,
			TTL:    9,
			Children: []runner.ChildSpec{
				{Name: "Landmark", Offset: core.V2(4, 0)},
			},
		}
	})
}

func TestRegisterAndCreate(t *testing.T) {
	if !Exists("test-short") {
		t.Fatal("expected test-short to be registered")
	}

	kind, err := Create("test-short")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if kind.Name != "test-short" {
		t.Errorf("Name = %q, want test-short", kind.Name)
	}
	if len(kind.Children) != 1 {
		t.Errorf("got %d children, want 1", len(kind.Children))
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown segment")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-short", func() runner.SegmentKind { return runner.SegmentKind{} })
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Errorf("List not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
	found := false
	for _, info := range list {
		if info.Name == "test-short" {
			found = true
			if info.Length != 6 || info.Children != 1 {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if !found {
		t.Error("test-short missing from List")
	}
}

func TestCatalogOverridesTTL(t *testing.T) {
	catalog, err := Catalog([]config.SegmentKindCfg{
		{Name: "test-short"},
		{Name: "test-short", TTL: 26},
	})
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if catalog[0].TTL != 9 {
		t.Errorf("catalog[0].TTL = %v, want blueprint ttl 9", catalog[0].TTL)
	}
	if catalog[1].TTL != 26 {
		t.Errorf("catalog[1].TTL = %v, want 26", catalog[1].TTL)
	}
}

func TestCatalogSkipsUnknownNames(t *testing.T) {
	catalog, err := Catalog([]config.SegmentKindCfg{{Name: "missing"}, {Name: "test-short"}})
	if err == nil {
		t.Error("expected error for unknown catalog entry")
	}
	if len(catalog) != 1 || catalog[0].Name != "test-short" {
		t.Errorf("expected only test-short to be built, got %+v", catalog)
	}
}
