package contact

import (
	"errors"
	"strings"
	"testing"
)

func TestPrepareSanitizes(t *testing.T) {
	enq, err := Prepare(Request{
		Name:         "  Ada   Lovelace ",
		Email:        "Ada <ada@example.com>",
		BusinessNeed: `<p>We need <b>pharmacy</b> locations</p><script>alert(1)</script>`,
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if enq.Name != "Ada Lovelace" {
		t.Errorf("Name = %q", enq.Name)
	}
	if enq.Email != "ada@example.com" {
		t.Errorf("Email = %q", enq.Email)
	}
	if strings.Contains(enq.BusinessNeed, "<script>") {
		t.Errorf("script survived sanitizing: %q", enq.BusinessNeed)
	}
	if !strings.Contains(enq.BusinessNeed, "<b>pharmacy</b>") {
		t.Errorf("safe markup was stripped: %q", enq.BusinessNeed)
	}
	if enq.Preview != "We need pharmacy locations" {
		t.Errorf("Preview = %q", enq.Preview)
	}
}

func TestPrepareRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"missing name", Request{Email: "a@example.com", BusinessNeed: "data"}},
		{"bad email", Request{Name: "A", Email: "not-an-email", BusinessNeed: "data"}},
		{"script-only need", Request{Name: "A", Email: "a@example.com", BusinessNeed: "<script>x()</script>"}},
		{"long name", Request{Name: strings.Repeat("n", 201), Email: "a@example.com", BusinessNeed: "data"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Prepare(tt.req); !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("err = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	if got := TruncateText("hello world", 8); got != "hello..." {
		t.Fatalf("TruncateText = %q", got)
	}
	if got := TruncateText("short", 8); got != "short" {
		t.Fatalf("TruncateText = %q", got)
	}
	if got := TruncateText("héllo wörld", 5); got != "hé..." {
		t.Fatalf("TruncateText should respect runes, got %q", got)
	}
}
