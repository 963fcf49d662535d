// Package layout turns unstructured résumé text into an ordered list of
// styled blocks that a PDF renderer can draw without further analysis.
package layout

type Kind int

const (
	KindSpacer Kind = iota
	KindHeading
	KindSubHeading
	KindListItem
	KindContactLine
	KindBody
)

func (k Kind) String() string {
	switch k {
	case KindSpacer:
		return "Spacer"
	case KindHeading:
		return "Heading"
	case KindSubHeading:
		return "SubHeading"
	case KindListItem:
		return "ListItem"
	case KindContactLine:
		return "ContactLine"
	case KindBody:
		return "Body"
	default:
		return "Unknown"
	}
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Style describes how a block is drawn. Sizes are in points.
type Style struct {
	Name       string
	FontSize   float64
	Bold       bool
	Align      Align
	LeftIndent float64
	SpaceAfter float64
}

// SpacerHeight is the vertical gap emitted for a blank input line.
const SpacerHeight = 6

var (
	HeadingStyle = Style{
		Name:       "HeadingCentered",
		FontSize:   16,
		Bold:       true,
		Align:      AlignCenter,
		SpaceAfter: 8,
	}
	SubHeadingStyle = Style{
		Name:       "SubHeading",
		FontSize:   12,
		Bold:       true,
		SpaceAfter: 8,
	}
	BodyStyle = Style{
		Name:       "BodyTextCustom",
		FontSize:   10,
		SpaceAfter: 4,
	}
	ListItemStyle = Style{
		Name:       "ListItem",
		FontSize:   10,
		LeftIndent: 18,
		SpaceAfter: 2,
	}
	SpacerStyle = Style{
		Name:       "Spacer",
		SpaceAfter: SpacerHeight,
	}
)

// StyleFor returns the fixed style of a block kind. Contact lines are drawn
// exactly like body text.
func StyleFor(kind Kind) Style {
	switch kind {
	case KindHeading:
		return HeadingStyle
	case KindSubHeading:
		return SubHeadingStyle
	case KindListItem:
		return ListItemStyle
	case KindSpacer:
		return SpacerStyle
	default:
		return BodyStyle
	}
}

// Block is one classified unit of output. Text is entity-escaped markup:
// '&', '<', '>' and every non-ASCII character appear as character
// references. Spacers carry no text.
type Block struct {
	Kind  Kind
	Text  string
	Style Style
}

func NewBlock(kind Kind, text string) Block {
	if kind == KindSpacer {
		text = ""
	}
	return Block{Kind: kind, Text: text, Style: StyleFor(kind)}
}

func Spacer() Block {
	return NewBlock(KindSpacer, "")
}

type Document struct {
	Blocks []Block
}

func (d *Document) Len() int {
	return len(d.Blocks)
}

func (d *Document) Append(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// Kinds lists the block kinds in document order.
func (d *Document) Kinds() []Kind {
	kinds := make([]Kind, len(d.Blocks))
	for i, b := range d.Blocks {
		kinds[i] = b.Kind
	}
	return kinds
}
