package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTextLength caps item text while it is being typed or edited.
const MaxTextLength = 50

var (
	ErrMissingID = errors.New("model: item id is required")
	ErrEmptyText = errors.New("model: item text is required")
	ErrTextTrim  = errors.New("model: item text must be trimmed")
)

type Item struct {
	ID        string
	Text      string
	Completed bool
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(i.Text) == "" {
		return ErrEmptyText
	}
	if strings.TrimSpace(i.Text) != i.Text {
		return fmt.Errorf("%w: %q", ErrTextTrim, i.Text)
	}
	return nil
}

// Marker is the glyph shown in front of the item text.
func (i Item) Marker() string {
	if i.Completed {
		return "✓"
	}
	return "○"
}

// NormalizeText trims s and reports whether anything is left.
func NormalizeText(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// FitsDraft reports whether s may be held as an in-progress draft.
func FitsDraft(s string) bool {
	return utf8.RuneCountInString(s) <= MaxTextLength
}
