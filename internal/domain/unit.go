package domain

// UnitContext identifies the phonetic context of a unit. The lexicon loader
// only ever produces context-independent units, so the zero value is the
// only context used in this repository.
type UnitContext string

// EmptyContext marks a context-independent unit.
const EmptyContext UnitContext = ""

// Unit is an interned phonetic unit. All units are obtained through the
// interner (internal/unit); identical (Name, Filler) pairs share a single
// instance, so equality is pointer identity rather than string comparison.
type Unit struct {
	Name    string
	Filler  bool
	Context UnitContext
}

func (u *Unit) String() string {
	return u.Name
}
