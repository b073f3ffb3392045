package testutil

import (
	"testing"
)

func TestLogger_NotNil(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewDistro_Defaults(t *testing.T) {
	d := NewDistro()
	if d.ID == "" {
		t.Error("expected non-empty ID")
	}
	if d.Name != "Test Distro" {
		t.Errorf("Name = %q, want Test Distro", d.Name)
	}
	if len(d.Categories) != 1 || d.Categories[0] != "Beginner-friendly" {
		t.Errorf("Categories = %v, want [Beginner-friendly]", d.Categories)
	}
}

func TestNewDistro_UniqueIDs(t *testing.T) {
	if a, b := NewDistro(), NewDistro(); a.ID == b.ID {
		t.Errorf("two fixtures share ID %q", a.ID)
	}
}

func TestNewDistro_WithOptions(t *testing.T) {
	d := NewDistro(
		WithID("alpha"),
		WithName("Alpha"),
		WithCategories("Gaming", "Server"),
		WithProcessor("modern-64bit", "arm64"),
	)
	if d.ID != "alpha" {
		t.Errorf("ID = %q, want alpha", d.ID)
	}
	if d.Name != "Alpha" {
		t.Errorf("Name = %q, want Alpha", d.Name)
	}
	if len(d.Categories) != 2 || d.Categories[1] != "Server" {
		t.Errorf("Categories = %v, want [Gaming Server]", d.Categories)
	}
	if len(d.Requirements.Processor) != 2 || d.Requirements.Processor[1] != "arm64" {
		t.Errorf("Processor = %v, want [modern-64bit arm64]", d.Requirements.Processor)
	}
}

func TestNewCatalog_AcceptsDefaults(t *testing.T) {
	cat := NewCatalog(t, NewDistro(WithID("a")), NewDistro(WithID("b")))
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if got := cat.Default().ID; got != "a" {
		t.Errorf("Default().ID = %q, want a", got)
	}
}

func TestNewCatalogWithDefault(t *testing.T) {
	cat := NewCatalogWithDefault(t, "b", NewDistro(WithID("a")), NewDistro(WithID("b")))
	if got := cat.Default().ID; got != "b" {
		t.Errorf("Default().ID = %q, want b", got)
	}
}
