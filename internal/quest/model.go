package quest

// TagKind enumerates the tags a stage can carry.
type TagKind uint8

const (
	// TagOther marks a custom label captured verbatim.
	TagOther TagKind = iota
	// TagEvent marks a story event.
	TagEvent
	// TagBoss marks a boss fight.
	TagBoss
	// TagMiniboss marks a miniboss fight.
	TagMiniboss
	// TagFail marks a stage that went wrong.
	TagFail
	// TagResearch marks a research stage.
	TagResearch
)

// String returns the keyword used for the kind in quest files.
func (k TagKind) String() string {
	switch k {
	case TagEvent:
		return "event"
	case TagBoss:
		return "boss"
	case TagMiniboss:
		return "miniboss"
	case TagFail:
		return "fail"
	case TagResearch:
		return "research"
	default:
		return "other"
	}
}

// Tag is either a known keyword or a custom label. Label is only set for TagOther,
// so two tags are equal exactly when they compare equal with ==.
type Tag struct {
	Kind  TagKind
	Label string
}

var (
	Event    = Tag{Kind: TagEvent}
	Boss     = Tag{Kind: TagBoss}
	Miniboss = Tag{Kind: TagMiniboss}
	Fail     = Tag{Kind: TagFail}
	Research = Tag{Kind: TagResearch}
)

// Other wraps a custom label.
func Other(label string) Tag {
	return Tag{Kind: TagOther, Label: label}
}

// String returns the text the tag was written as.
func (t Tag) String() string {
	if t.Kind == TagOther {
		return t.Label
	}
	return t.Kind.String()
}

// TagList keeps tags in the order they were written.
type TagList []Tag

// Important reports whether the list contains a boss or miniboss.
func (tl TagList) Important() bool {
	for _, tag := range tl {
		if tag.Kind == TagBoss || tag.Kind == TagMiniboss {
			return true
		}
	}
	return false
}

// Stage is one step of the quest.
type Stage struct {
	Action string
	Tags   TagList
}

// LineKind distinguishes the current-position marker from stages.
type LineKind uint8

const (
	// LineStage is a regular stage line.
	LineStage LineKind = iota
	// LineMarker is the "you are here" delimiter.
	LineMarker
)

// Line is a single parsed input line. Stage is the zero value for markers.
type Line struct {
	Kind  LineKind
	Stage Stage
}

// MarkerLine returns the current-position delimiter.
func MarkerLine() Line {
	return Line{Kind: LineMarker}
}

// StageLine wraps a stage.
func StageLine(stage Stage) Line {
	return Line{Kind: LineStage, Stage: stage}
}

// IsMarker reports whether the line is the current-position delimiter.
func (l Line) IsMarker() bool {
	return l.Kind == LineMarker
}

// Document is the ordered result of parsing a quest file.
type Document struct {
	Lines []Line
}

// Markers counts the marker lines in the document.
func (d Document) Markers() int {
	count := 0
	for _, line := range d.Lines {
		if line.IsMarker() {
			count++
		}
	}
	return count
}
