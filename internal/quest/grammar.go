package quest

import "strings"

const markerToken = "---"

// tagKeywords is tried in order before falling back to a custom label.
var tagKeywords = []struct {
	word string
	tag  Tag
}{
	{"event", Event},
	{"boss", Boss},
	{"miniboss", Miniboss},
	{"fail", Fail},
	{"research", Research},
}

func tagToken(c *cursor) (Tag, error) {
	word, ok := c.identifier()
	if !ok {
		return Tag{}, c.mismatch("expected tag name")
	}
	for _, kw := range tagKeywords {
		if word == kw.word {
			return kw.tag, nil
		}
	}
	return Other(word), nil
}

// tagList parses "[" [tag {"," tag}] "]". An empty list yields nil.
func tagList(c *cursor) (TagList, error) {
	if !c.literal("[") {
		return nil, c.mismatch("expected '['")
	}
	c.skipBlanks()
	if c.literal("]") {
		return nil, nil
	}

	var tags TagList
	for {
		tag, err := skipWS(c, tagToken)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)

		switch {
		case c.literal(","):
			continue
		case c.literal("]"):
			return tags, nil
		default:
			return nil, c.mismatch("expected ',' or ']'")
		}
	}
}

// lineRule reports ok=false when the line is not of its form. A non-nil error
// means the form matched but the line is malformed.
type lineRule func(c *cursor) (line Line, ok bool, err error)

// lineRules is tried in order; the first match wins.
var lineRules = []lineRule{
	markerLine,
	stageLine,
}

func markerLine(c *cursor) (Line, bool, error) {
	c.skipBlanks()
	if !c.literal(markerToken) {
		return Line{}, false, nil
	}
	c.skipBlanks()
	return MarkerLine(), true, nil
}

func stageLine(c *cursor) (Line, bool, error) {
	c.skipBlanks()

	var tags TagList
	if c.peek('[') {
		var err error
		if tags, err = tagList(c); err != nil {
			return Line{}, false, err
		}
	}

	action, _ := skipWS(c, func(c *cursor) (string, error) {
		return c.restOfLine(), nil
	})
	action = strings.TrimRight(action, " \t")

	return StageLine(Stage{Action: action, Tags: tags}), true, nil
}

func parseLine(c *cursor) (Line, error) {
	from := c.pos
	for _, rule := range lineRules {
		c.pos = from
		line, ok, err := rule(c)
		if err != nil {
			return Line{}, err
		}
		if ok {
			return line, nil
		}
	}
	c.pos = from
	return Line{}, c.mismatch("no line form matches")
}

// ParseLine parses a single line. Anything after the first line terminator is
// reported as trailing input.
func ParseLine(text string) (Line, error) {
	end := strings.IndexByte(text, '\n')
	if end < 0 {
		end = len(text)
	}
	c := &cursor{src: text, line: 1, end: end}
	line, err := parseLine(c)
	if err != nil {
		return Line{}, err
	}
	if c.pos < len(text) {
		return Line{}, c.trailing()
	}
	return line, nil
}

// Parse turns a quest file into a Document. The whole input must be consumed;
// the first failing line aborts the parse and no partial document is returned.
func Parse(text string) (Document, error) {
	var doc Document
	for _, seg := range segments(text) {
		c := &cursor{src: text, line: seg.number, start: seg.start, end: seg.end, pos: seg.start}
		line, err := parseLine(c)
		if err != nil {
			return Document{}, err
		}
		if c.pos < c.end {
			return Document{}, c.trailing()
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}
