package capability

import (
	"errors"
	"testing"
)

func TestRegistry_Register(t *testing.T) {
	t.Run("preserves registration order", func(t *testing.T) {
		r := NewRegistry()
		for _, id := range []string{"b", "a", "c"} {
			if err := r.Register(Capability{ID: id}); err != nil {
				t.Fatalf("Register(%q): %v", id, err)
			}
		}

		got := r.List()
		want := []string{"b", "a", "c"}
		if len(got) != len(want) {
			t.Fatalf("List() returned %d capabilities, want %d", len(got), len(want))
		}
		for i, c := range got {
			if c.ID != want[i] {
				t.Errorf("List()[%d].ID = %q, want %q", i, c.ID, want[i])
			}
		}
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register(Capability{ID: "flashcard"}); err != nil {
			t.Fatalf("first Register: %v", err)
		}
		err := r.Register(Capability{ID: "flashcard"})
		if !errors.Is(err, ErrDuplicateID) {
			t.Errorf("duplicate Register error = %v, want ErrDuplicateID", err)
		}
	})

	t.Run("rejects empty id", func(t *testing.T) {
		r := NewRegistry()
		if err := r.Register(Capability{}); !errors.Is(err, ErrEmptyID) {
			t.Errorf("Register error = %v, want ErrEmptyID", err)
		}
	})
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Capability{ID: "test", Description: "quiz builder"}); err != nil {
		t.Fatal(err)
	}

	c, ok := r.Get("test")
	if !ok {
		t.Fatal("Get(test) not found")
	}
	if c.Description != "quiz builder" {
		t.Errorf("Description = %q", c.Description)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) = found, want not found")
	}
}

func TestRegistry_Manifest(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Capability{
		ID:          "course_search",
		Description: "search courses",
		Parameters: []ParamSpec{
			{Name: "query", Type: "string", Required: true, Hint: "search terms"},
			{Name: "level", Type: "string"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	tools := r.Manifest()
	if len(tools) != 1 {
		t.Fatalf("Manifest() returned %d tools, want 1", len(tools))
	}
	tool := tools[0]
	if tool.Name != "course_search" {
		t.Errorf("tool.Name = %q", tool.Name)
	}

	props, ok := tool.Parameters["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("schema has no properties object: %#v", tool.Parameters)
	}
	if _, ok := props["query"]; !ok {
		t.Error("schema missing query property")
	}
	required, ok := tool.Parameters["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "query" {
		t.Errorf("schema required = %#v, want [query]", tool.Parameters["required"])
	}
}

func TestDefaultRegistry(t *testing.T) {
	r, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}

	caps := r.List()
	if len(caps) != 4 {
		t.Fatalf("got %d capabilities, want 4", len(caps))
	}

	seen := map[string]bool{}
	for _, c := range caps {
		if seen[c.ID] {
			t.Errorf("duplicate capability id %q", c.ID)
		}
		seen[c.ID] = true

		for _, req := range c.RequiredContext {
			if req != RequireContentRef {
				t.Errorf("capability %q declares unknown requirement %q", c.ID, req)
			}
		}
		if c.RequiresContentRef() && len(c.CompatibleViews) == 0 {
			t.Errorf("capability %q requires a content reference but lists no compatible views", c.ID)
		}
	}

	for _, id := range []string{IDFlashcard, IDTest, IDCourseSearch, IDCareerPath} {
		if !seen[id] {
			t.Errorf("missing capability %q", id)
		}
	}
}

func TestCapability_ViewCompatible(t *testing.T) {
	c := Capability{CompatibleViews: []string{ViewNote, ViewNoteEditor}}
	if !c.ViewCompatible(ViewNote) {
		t.Error("ViewCompatible(note) = false")
	}
	if c.ViewCompatible("dashboard") {
		t.Error("ViewCompatible(dashboard) = true")
	}
}
