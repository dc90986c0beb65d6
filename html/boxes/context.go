package boxes

import "fmt"

// FormattingKind is the layout mode a formatting context imposes on the
// boxes participating in it.
type FormattingKind uint8

const (
	BlockFormatting FormattingKind = iota
	InlineFormatting
)

func (k FormattingKind) String() string {
	if k == InlineFormatting {
		return "inline"
	}
	return "block"
}

// Qualifier says whether a context was established fresh by a box
// (independent) or stands for participation in a context established by
// an ancestor (dependent).
type Qualifier uint8

const (
	Independent Qualifier = iota
	Dependent
)

func (q Qualifier) String() string {
	if q == Dependent {
		return "dependent"
	}
	return "independent"
}

// ContextID addresses one formatting context record in an Arena. Two
// boxes participate in the same context instance if and only if their
// IDs are equal.
type ContextID int32

// NoContext marks the absence of a formatting context, for instance the
// established context of a box which merely joins its parent's.
const NoContext ContextID = -1

type contextRecord struct {
	kind      FormattingKind
	qualifier Qualifier
}

// Arena owns every formatting context created during one construction
// pass. Boxes refer to contexts by ContextID; records are append only
// and never rewritten once created.
type Arena struct {
	records []contextRecord
}

func NewArena() *Arena { return &Arena{} }

// New registers a fresh formatting context and returns its ID.
func (a *Arena) New(kind FormattingKind, qualifier Qualifier) ContextID {
	a.records = append(a.records, contextRecord{kind: kind, qualifier: qualifier})
	return ContextID(len(a.records) - 1)
}

func (a *Arena) NewIndependentBlock() ContextID { return a.New(BlockFormatting, Independent) }

func (a *Arena) NewIndependentInline() ContextID { return a.New(InlineFormatting, Independent) }

// Len returns the number of contexts created so far.
func (a *Arena) Len() int { return len(a.records) }

// Kind returns the layout mode of the given context, which must be a
// valid ID of this arena.
func (a *Arena) Kind(id ContextID) FormattingKind { return a.records[id].kind }

// Qualifier returns the qualifier of the given context, which must be a
// valid ID of this arena.
func (a *Arena) Qualifier(id ContextID) Qualifier { return a.records[id].qualifier }

// IsBlock reports whether `id` is a block formatting context,
// independent or dependent. It returns false for NoContext.
func (a *Arena) IsBlock(id ContextID) bool {
	return id != NoContext && a.records[id].kind == BlockFormatting
}

// IsInline reports whether `id` is an inline formatting context,
// independent or dependent. It returns false for NoContext.
func (a *Arena) IsInline(id ContextID) bool {
	return id != NoContext && a.records[id].kind == InlineFormatting
}

// Describe returns a short human readable tag for the context, used in
// box tree dumps.
func (a *Arena) Describe(id ContextID) string {
	if id == NoContext {
		return "none"
	}
	return fmt.Sprintf("%s#%d", a.records[id].kind, id)
}
