package domain

// Direction selects the previous or next post on the timeline.
type Direction int

const (
	// Previous is the nearest older post.
	Previous Direction = iota
	// Next is the nearest newer post.
	Next
)

// String returns "previous" or "next".
func (d Direction) String() string {
	if d == Next {
		return "next"
	}
	return "previous"
}

// Comparator returns the publish-date comparison operator.
func (d Direction) Comparator() string {
	if d == Next {
		return ">"
	}
	return "<"
}

// Order returns the sort order that puts the adjacent post first.
func (d Direction) Order() SortOrder {
	if d == Next {
		return Ascending
	}
	return Descending
}

// Rel returns the HTML link relation.
func (d Direction) Rel() string {
	if d == Next {
		return "next"
	}
	return "prev"
}

// LinkKind returns the link kind for hooks and default labels.
func (d Direction) LinkKind() LinkKind {
	if d == Next {
		return LinkNext
	}
	return LinkPrevious
}

// Boundary selects the first or last post on the timeline.
type Boundary int

const (
	// Start is the oldest post.
	Start Boundary = iota
	// End is the newest post.
	End
)

// String returns "start" or "end".
func (b Boundary) String() string {
	if b == End {
		return "end"
	}
	return "start"
}

// Order returns the sort order that puts the boundary post first.
func (b Boundary) Order() SortOrder {
	if b == End {
		return Descending
	}
	return Ascending
}

// Rel returns the HTML link relation.
func (b Boundary) Rel() string {
	return b.String()
}

// LinkKind returns the link kind for hooks and default labels.
func (b Boundary) LinkKind() LinkKind {
	if b == End {
		return LinkEnd
	}
	return LinkStart
}

// SortOrder is a publish-date sort order.
type SortOrder string

const (
	Ascending  SortOrder = "ASC"
	Descending SortOrder = "DESC"
)

// LinkKind identifies which navigation link is being rendered.
type LinkKind string

const (
	LinkPrevious LinkKind = "previous"
	LinkNext     LinkKind = "next"
	LinkStart    LinkKind = "start"
	LinkEnd      LinkKind = "end"
)

// DefaultLabel returns the untranslated fallback title for the kind.
func (k LinkKind) DefaultLabel() string {
	switch k {
	case LinkNext:
		return "Next Post"
	case LinkStart:
		return "First Post"
	case LinkEnd:
		return "Last Post"
	default:
		return "Previous Post"
	}
}
