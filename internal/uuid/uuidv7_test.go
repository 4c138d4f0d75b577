package uuid

import (
	"strings"
	"testing"
)

func TestNewIsVersion7(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("New() returned invalid uuid %q", id)
	}
	// the version nibble is the first character of the third group
	if parts := strings.Split(id, "-"); parts[2][0] != '7' {
		t.Errorf("expected version 7, got %q", id)
	}
}

func TestNewIsTimeOrdered(t *testing.T) {
	prev := New()
	for i := 0; i < 50; i++ {
		next := New()
		if next <= prev {
			t.Fatalf("ids not ordered: %s then %s", prev, next)
		}
		prev = next
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("0190F5A8-7C3E-7B1A-9C2D-123456789ABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0190f5a8-7c3e-7b1a-9c2d-123456789abc" {
		t.Errorf("Parse() = %q", got)
	}
	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for malformed uuid")
	}
}
