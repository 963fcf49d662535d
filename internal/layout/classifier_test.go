package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  Software Engineer \t", "Software Engineer"},
		{"drops bold and italic markers", "**Senior** __Go__ developer", "Senior Go developer"},
		{"bold only line becomes empty", "  **  ", ""},
		{"rule becomes em dash reference", "---", "&#8212;"},
		{"nbsp becomes space", "Go\u00a0Developer", "Go Developer"},
		{"bullet glyph becomes star", "\u2022 Built APIs", "* Built APIs"},
		{"escapes markup once", "R&D <team> & co", "R&amp;D &lt;team&gt; &amp; co"},
		{"existing entity escaped one level", "&amp;", "&amp;amp;"},
		{"non ascii to char refs", "café naïve", "caf&#233; na&#239;ve"},
		{"em dash from input", "2020 — 2024", "2020 &#8212; 2024"},
		{"carriage return trimmed", "SKILLS\r", "SKILLS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLine(tt.in))
		})
	}
}

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		emitted  int
		wantKind Kind
		wantText string
	}{
		{"short all caps", "EXPERIENCE", 10, KindSubHeading, "EXPERIENCE"},
		{"all caps with digits", "SKILLS 2024", 0, KindSubHeading, "SKILLS 2024"},
		{"all caps bullet stays heading", "* SKILLS", 5, KindSubHeading, "* SKILLS"},
		{"long all caps falls through", strings.Repeat("A", 50), 10, KindBody, strings.Repeat("A", 50)},
		{"bullet", "* item one", 10, KindListItem, "item one"},
		{"bullet glyph", "\u2022 item two", 10, KindListItem, "item two"},
		{"only leading stars stripped", "** * nested", 10, KindListItem, "* nested"},
		{"contact email early", "jane@example.com", 2, KindContactLine, "jane@example.com"},
		{"contact phone early", "Phone: 555-0100", 0, KindContactLine, "Phone: 555-0100"},
		{"contact email late", "jane@example.com", 3, KindBody, "jane@example.com"},
		{"contact too long", "Reach me any time at jane.doe@example-company.com ok", 0, KindBody, "Reach me any time at jane.doe@example-company.com ok"},
		{"lower case phone word", "phone 555-0100", 0, KindBody, "phone 555-0100"},
		{"numbers only", "2020 - 2024", 0, KindBody, "2020 - 2024"},
		{"escaped ampersand breaks caps", "R&amp;D TEAM", 10, KindBody, "R&amp;D TEAM"},
		{"body", "Built billing pipelines in Go.", 0, KindBody, "Built billing pipelines in Go."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := Classify(tt.line, tt.emitted)
			assert.Equal(t, tt.wantKind, block.Kind)
			assert.Equal(t, tt.wantText, block.Text)
			assert.Equal(t, StyleFor(tt.wantKind), block.Style)
		})
	}
}

func TestBuildExample(t *testing.T) {
	doc := Build("HELLO\n\n* item one\nJohn Doe john@x.com")

	require.Equal(t, 4, doc.Len())
	assert.Equal(t, []Kind{KindSubHeading, KindSpacer, KindListItem, KindBody}, doc.Kinds())
	assert.Equal(t, "HELLO", doc.Blocks[0].Text)
	assert.Empty(t, doc.Blocks[1].Text)
	assert.Equal(t, "item one", doc.Blocks[2].Text)
	// Three blocks precede the last line, spacer included, so the contact
	// rule no longer applies.
	assert.Equal(t, "John Doe john@x.com", doc.Blocks[3].Text)
}

func TestBuildContactHeader(t *testing.T) {
	doc := Build("Jane Doe\njane@x.com\nPhone: 555-0100\nmore@x.com")

	assert.Equal(t, []Kind{KindBody, KindContactLine, KindContactLine, KindBody}, doc.Kinds())
}

func TestBuildSpacersCountTowardsContactRegion(t *testing.T) {
	doc := Build("\n\n\njane@x.com")

	assert.Equal(t, []Kind{KindSpacer, KindSpacer, KindSpacer, KindBody}, doc.Kinds())
}

func TestBuildResume(t *testing.T) {
	text := strings.Join([]string{
		"**Jane Doe**",
		"jane@example.com | Phone: 555-0100",
		"",
		"SUMMARY",
		"Backend engineer with 6 years of Go & distributed systems.",
		"---",
		"EXPERIENCE",
		"• Cut p99 latency by 40% <measured> across 12 services",
		"* Led migration to Kubernetes",
		"EDUCATION",
		"B.Sc. Computer Science, Universidad de Málaga",
		"",
	}, "\r\n")

	doc := Build(text)

	assert.Equal(t, []Kind{
		KindBody,
		KindContactLine,
		KindSpacer,
		KindSubHeading,
		KindBody,
		KindBody,
		KindSubHeading,
		KindListItem,
		KindListItem,
		KindSubHeading,
		KindBody,
		KindSpacer,
	}, doc.Kinds())

	assert.Equal(t, "Jane Doe", doc.Blocks[0].Text)
	assert.Equal(t, "Backend engineer with 6 years of Go &amp; distributed systems.", doc.Blocks[4].Text)
	assert.Equal(t, "&#8212;", doc.Blocks[5].Text)
	assert.Equal(t, "Cut p99 latency by 40% &lt;measured&gt; across 12 services", doc.Blocks[7].Text)
	assert.Equal(t, "B.Sc. Computer Science, Universidad de M&#225;laga", doc.Blocks[10].Text)
}

func TestBuildInvariants(t *testing.T) {
	lines := []string{
		"", "  ", "**", "__", "HELLO", "* ITEM", "* item", "• bullet",
		strings.Repeat("X", 49), strings.Repeat("X", 50), strings.Repeat("Y", 80),
		"a@b.c", "Phone 1", "<b>&</b>", "plain body", "café", "---", "TITLE CASE",
	}

	var sb strings.Builder
	for i := 0; i < 3; i++ {
		for _, l := range lines {
			sb.WriteString(l)
			sb.WriteByte('\n')
		}
	}
	inputLines := strings.Split(sb.String(), "\n")

	doc := Build(sb.String())
	require.Equal(t, len(inputLines), doc.Len(), "one block per input line")

	for i, block := range doc.Blocks {
		normalized := NormalizeLine(inputLines[i])

		assert.Equal(t, normalized == "", block.Kind == KindSpacer, "spacer iff line %d normalizes to empty", i)

		if block.Kind == KindSubHeading {
			assert.Less(t, len([]rune(block.Text)), 50)
			assert.True(t, isUpper(block.Text))
		}
		if isUpper(normalized) && len([]rune(normalized)) < 50 {
			assert.Equal(t, KindSubHeading, block.Kind, "short caps line %q", normalized)
		}
		if block.Kind == KindContactLine {
			assert.Less(t, i, 3, "contact lines only while fewer than 3 blocks exist")
		}
		assert.NotContains(t, block.Text, "&amp;amp;", "no double escaping")
		for _, r := range block.Text {
			assert.Less(t, r, rune(128), "block text must be ASCII")
		}
	}
}

func TestStyles(t *testing.T) {
	assert.Equal(t, AlignCenter, StyleFor(KindHeading).Align)
	assert.True(t, StyleFor(KindHeading).Bold)
	assert.Equal(t, 16.0, StyleFor(KindHeading).FontSize)
	assert.True(t, StyleFor(KindSubHeading).Bold)
	assert.Equal(t, 18.0, StyleFor(KindListItem).LeftIndent)
	assert.Equal(t, StyleFor(KindBody), StyleFor(KindContactLine))
	assert.Equal(t, float64(SpacerHeight), Spacer().Style.SpaceAfter)
	assert.Equal(t, "ContactLine", KindContactLine.String())
}
