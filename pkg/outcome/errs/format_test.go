package errs

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFullString_ThreeLevelChain(t *testing.T) {
	t.Parallel()

	root := NewNotFound("User", 123)
	mid := NewFailure("user lookup failed", nil, root)
	top := NewUnexpected(errors.New("request aborted"), mid)

	out := FullString(top)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}

	prevIndent := -1
	for i, ln := range lines {
		indent := len(ln) - len(strings.TrimLeft(ln, " "))
		if indent <= prevIndent {
			t.Fatalf("line %d: indentation must strictly increase with depth:\n%s", i, out)
		}
		prevIndent = indent
	}

	for i, want := range []struct{ kindLabel, code, msg string }{
		{"[Unexpected]", "Unexpected", "request aborted"},
		{"[Failure]", "Failure", "user lookup failed"},
		{"[NotFound]", "NotFound.User", "was not found"},
	} {
		if !strings.Contains(lines[i], want.kindLabel) ||
			!strings.Contains(lines[i], want.code) ||
			!strings.Contains(lines[i], want.msg) {
			t.Fatalf("line %d missing kind/code/message:\n%s", i, out)
		}
	}
}

func TestFullString_ColumnsAligned(t *testing.T) {
	t.Parallel()

	root := NewNotFound("VeryLongEntityName", 1)
	top := NewFailure("short", nil, root)

	out := FullString(top)
	lines := strings.Split(out, "\n")

	// Timestamps start at the same column on every row.
	year := top.Timestamp().Local().Format("2006")
	col := strings.Index(lines[0], year)
	if col < 0 {
		t.Fatalf("no timestamp on first row:\n%s", out)
	}
	for _, ln := range lines {
		if strings.Index(ln, year) != col {
			t.Fatalf("timestamp column misaligned:\n%s", out)
		}
	}
}

func TestFullString_WrapsLongMessages(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 40)
	e := NewFailure(strings.TrimSpace(long), nil)

	out := FullString(e)
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped continuation lines:\n%s", out)
	}

	msgCol := strings.Index(lines[0], "word")
	for _, cont := range lines[1:] {
		indent := len(cont) - len(strings.TrimLeft(cont, " "))
		if indent != msgCol {
			t.Fatalf("continuation must be indented to the message column (%d != %d):\n%s",
				indent, msgCol, out)
		}
	}
	for _, ln := range lines {
		if len(ln) > reportWidth {
			t.Fatalf("line exceeds report width: %d\n%s", len(ln), ln)
		}
	}
}

func TestFullString_Empty(t *testing.T) {
	t.Parallel()

	if FullString(nil) != "" {
		t.Fatal("nil entity renders empty")
	}
}

func TestWrap_HardSplitsOversizedWords(t *testing.T) {
	t.Parallel()

	lines := wrap(strings.Repeat("x", 25), 10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 hard-split lines, got %d", len(lines))
	}
	for _, ln := range lines {
		if len(ln) > 10 {
			t.Fatalf("line %q longer than width", ln)
		}
	}
}

func TestFullString_MultibyteCodesAlign(t *testing.T) {
	t.Parallel()

	root := NewNotFound("Bücher", 7)
	top := NewFailure("Suche fehlgeschlagen", nil, root)

	out := FullString(top)
	lines := strings.Split(out, "\n")

	// Columns align visually, so the prefix before the timestamp must hold
	// the same number of runes on every row even when codes are multibyte.
	year := top.Timestamp().Local().Format("2006")
	col := -1
	for _, ln := range lines {
		if !utf8.ValidString(ln) {
			t.Fatalf("line contains a broken rune: %q", ln)
		}
		idx := strings.Index(ln, year)
		if idx < 0 {
			t.Fatalf("row without timestamp:\n%s", out)
		}
		runeCol := utf8.RuneCountInString(ln[:idx])
		if col == -1 {
			col = runeCol
		} else if runeCol != col {
			t.Fatalf("timestamp column misaligned (%d != %d):\n%s", runeCol, col, out)
		}
	}
}

func TestWrap_SplitsMultibyteWordsOnRunes(t *testing.T) {
	t.Parallel()

	lines := wrap(strings.Repeat("ü", 25), 10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 hard-split lines, got %d", len(lines))
	}
	for _, ln := range lines {
		if !utf8.ValidString(ln) {
			t.Fatalf("hard split broke a rune: %q", ln)
		}
		if utf8.RuneCountInString(ln) > 10 {
			t.Fatalf("line %q longer than width in runes", ln)
		}
	}
}
