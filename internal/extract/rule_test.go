package extract

import (
	"errors"
	"testing"
)

// TestNewRule tests rule construction.
func TestNewRule(t *testing.T) {
	t.Parallel()

	t.Run("rejects unnamed capture groups", func(t *testing.T) {
		t.Parallel()

		_, err := NewRule("bad", `<a href="(.*?)">`, nil)
		if !errors.Is(err, ErrUnnamedCapture) {
			t.Errorf("expected ErrUnnamedCapture, got %v", err)
		}
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		t.Parallel()

		if _, err := NewRule("bad", `(?P<x>`, nil); err == nil {
			t.Error("expected compile error")
		}
	})

	t.Run("MustRule panics on invalid pattern", func(t *testing.T) {
		t.Parallel()

		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		MustRule("bad", `(`, nil)
	})
}

// TestRuleApply tests capture collection and filtering.
func TestRuleApply(t *testing.T) {
	t.Parallel()

	rule := MustRule("digits", `id=(?P<id>\d*)`, func(m Match) bool {
		return m["id"] != ""
	})

	if rule.Name() != "digits" {
		t.Errorf("expected name digits, got %s", rule.Name())
	}

	got := rule.Apply("id=1 id= id=22 id=333")
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	for i, want := range []string{"1", "22", "333"} {
		if got[i]["id"] != want {
			t.Errorf("match %d: expected %s, got %s", i, want, got[i]["id"])
		}
	}

	if n := len(rule.Apply("")); n != 0 {
		t.Errorf("expected no matches on empty text, got %d", n)
	}
}
