package layout

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Lines at or above this many characters are never treated as headings
	// or contact lines.
	shortLineLimit = 50
	// Contact lines may only appear while the document holds fewer blocks.
	contactRegionBlocks = 3
)

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// NormalizeLine cleans one input line into renderer-safe markup: markdown
// emphasis is dropped, rules become em-dashes, bullets become '*', markup
// characters are escaped once and non-ASCII runes become numeric
// character references.
func NormalizeLine(line string) string {
	line = strings.TrimSpace(line)
	line = cleanMarkdown(line)
	line = strings.TrimSpace(line)
	line = markupEscaper.Replace(line)
	return asciiCharRefs(line)
}

// cleanMarkdown applies each replacement over the whole line in turn, so a
// later pattern may match text produced by an earlier one.
func cleanMarkdown(line string) string {
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "__", "")
	line = strings.ReplaceAll(line, "---", "\u2014")
	line = strings.ReplaceAll(line, "\u00a0", " ")
	return strings.ReplaceAll(line, "\u2022", "*")
}

func asciiCharRefs(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	}
	return b.String()
}

// Classify decides the kind of a normalized, non-empty line. emitted is the
// number of blocks already in the document, spacers included. Rules are
// checked in order and the first match wins.
func Classify(line string, emitted int) Block {
	switch {
	case isUpper(line) && charLen(line) < shortLineLimit:
		return NewBlock(KindSubHeading, line)
	case strings.HasPrefix(line, "*") || strings.HasPrefix(line, "\u2022"):
		item := strings.TrimLeft(line, "*\u2022")
		return NewBlock(KindListItem, strings.TrimSpace(item))
	case emitted < contactRegionBlocks && charLen(line) < shortLineLimit &&
		(strings.Contains(line, "@") || strings.Contains(line, "Phone")):
		return NewBlock(KindContactLine, line)
	default:
		return NewBlock(KindBody, line)
	}
}

// Build classifies text line by line into a Document. Blocks are never
// reordered or merged.
func Build(text string) Document {
	var doc Document
	for _, raw := range strings.Split(text, "\n") {
		line := NormalizeLine(raw)
		if line == "" {
			doc.Append(Spacer())
			continue
		}
		doc.Append(Classify(line, doc.Len()))
	}
	return doc
}

// isUpper reports whether s has at least one cased letter and no lower or
// title case letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r) || unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

func charLen(s string) int {
	return utf8.RuneCountInString(s)
}
