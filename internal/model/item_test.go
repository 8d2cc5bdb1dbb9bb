package model

import (
	"errors"
	"strings"
	"testing"
)

func TestItemValidateSuccess(t *testing.T) {
	item := Item{ID: "item-1", Text: "Buy milk"}
	if err := item.Validate(); err != nil {
		t.Fatalf("expected valid item, got error: %v", err)
	}
}

func TestItemValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want error
	}{
		{"missing id", Item{Text: "x"}, ErrMissingID},
		{"blank text", Item{ID: "a", Text: "   "}, ErrEmptyText},
		{"untrimmed text", Item{ID: "a", Text: " padded "}, ErrTextTrim},
	}
	for _, tc := range cases {
		err := tc.item.Validate()
		if err == nil || !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestItemMarker(t *testing.T) {
	item := Item{ID: "a", Text: "x"}
	if item.Marker() != "○" {
		t.Fatalf("unexpected pending marker: %q", item.Marker())
	}
	item.Completed = true
	if item.Marker() != "✓" {
		t.Fatalf("unexpected done marker: %q", item.Marker())
	}
}

func TestNormalizeText(t *testing.T) {
	got, ok := NormalizeText("  Buy milk \t")
	if !ok || got != "Buy milk" {
		t.Fatalf("unexpected normalize result: %q %v", got, ok)
	}
	if _, ok := NormalizeText("   "); ok {
		t.Fatal("expected whitespace-only text to be rejected")
	}
}

func TestFitsDraftCountsRunes(t *testing.T) {
	if !FitsDraft(strings.Repeat("a", MaxTextLength)) {
		t.Fatal("expected max length draft to fit")
	}
	if FitsDraft(strings.Repeat("a", MaxTextLength+1)) {
		t.Fatal("expected oversized draft to be rejected")
	}
	if !FitsDraft(strings.Repeat("é", MaxTextLength)) {
		t.Fatal("expected multibyte runes to count once")
	}
}
