package errs

import (
	"strings"
	"unicode/utf8"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	reportWidth     = 100
	minMessageWidth = 24
	indentStep      = 2
	columnGap       = 2
)

// FullString renders e and its whole cause chain as a columnar report, one
// row per error from self outward: a depth-indented [Kind] label, the code,
// the local creation timestamp and the message. Kind and code columns are
// padded to the widest value observed across the chain; messages that do
// not fit the report width word-wrap onto continuation lines indented to
// the message column. Pure; deterministic for a given chain and time zone.
func FullString(e Entity) string {
	chain := Flatten(e)
	if len(chain) == 0 {
		return ""
	}

	labels := make([]string, len(chain))
	kindWidth, codeWidth := 0, 0
	for i, cur := range chain {
		labels[i] = strings.Repeat(" ", i*indentStep) + "[" + cur.Kind().String() + "]"
		kindWidth = max(kindWidth, utf8.RuneCountInString(labels[i]))
		codeWidth = max(codeWidth, utf8.RuneCountInString(cur.Code()))
	}

	msgCol := kindWidth + columnGap + codeWidth + columnGap + len(timestampLayout) + columnGap
	msgWidth := max(reportWidth-msgCol, minMessageWidth)

	var sb strings.Builder
	for i, cur := range chain {
		sb.WriteString(pad(labels[i], kindWidth+columnGap))
		sb.WriteString(pad(cur.Code(), codeWidth+columnGap))
		sb.WriteString(cur.Timestamp().Local().Format(timestampLayout))
		sb.WriteString(strings.Repeat(" ", columnGap))

		lines := wrap(cur.Message(), msgWidth)
		sb.WriteString(lines[0])
		for _, ln := range lines[1:] {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", msgCol))
			sb.WriteString(ln)
		}
		if i < len(chain)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Widths are counted in runes so multibyte text keeps the columns aligned.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrap splits s into lines of at most width runes, breaking on spaces.
// Words longer than width are split hard, never mid-rune. Always returns at
// least one line.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur, curLen := "", 0
	for _, w := range words {
		r := []rune(w)
		for len(r) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur, curLen = "", 0
			}
			lines = append(lines, string(r[:width]))
			r = r[width:]
		}
		switch {
		case cur == "":
			cur, curLen = string(r), len(r)
		case curLen+1+len(r) <= width:
			cur += " " + string(r)
			curLen += 1 + len(r)
		default:
			lines = append(lines, cur)
			cur, curLen = string(r), len(r)
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
