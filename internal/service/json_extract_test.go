package service

import "testing"

func TestExtractFirstJSONObject(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		got := extractFirstJSONObject(`before {"a":1} after`)
		if got != `{"a":1}` {
			t.Fatalf("unexpected extraction: %q", got)
		}
	})

	t.Run("nested object", func(t *testing.T) {
		got := extractFirstJSONObject(`x {"a":{"b":2}} y`)
		if got != `{"a":{"b":2}}` {
			t.Fatalf("unexpected extraction: %q", got)
		}
	})

	t.Run("braces inside strings ignored", func(t *testing.T) {
		got := extractFirstJSONObject(`{"summary":"has } and { inside"}`)
		if got != `{"summary":"has } and { inside"}` {
			t.Fatalf("unexpected extraction: %q", got)
		}
	})

	t.Run("escaped quotes inside strings", func(t *testing.T) {
		got := extractFirstJSONObject(`{"a":"say \"hi\" {now}"}`)
		if got != `{"a":"say \"hi\" {now}"}` {
			t.Fatalf("unexpected extraction: %q", got)
		}
	})

	t.Run("no object", func(t *testing.T) {
		if got := extractFirstJSONObject("just text"); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})

	t.Run("unbalanced", func(t *testing.T) {
		if got := extractFirstJSONObject(`{"a":1`); got != "" {
			t.Fatalf("expected empty for unbalanced input, got %q", got)
		}
	})
}
