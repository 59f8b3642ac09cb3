package domain

import "strings"

// Well-known spellings resolved through the lexicon. The sentence markers
// come from the language model side; the silence word from the filler
// dictionary.
const (
	SentenceStartSpelling = "<s>"
	SentenceEndSpelling   = "</s>"
	SilenceSpelling       = "<sil>"
)

// Word is a single lexicon entry: a normalized spelling with its
// pronunciation variants. Words created for spellings that were absent from
// both source dictionaries carry no pronunciations at all.
type Word struct {
	Spelling       string
	Pronunciations []*Pronunciation
	Filler         bool
}

// NewWord builds a Word owning the given pronunciations and stamps each
// pronunciation's back-reference. The back-reference is written exactly
// once, here.
func NewWord(spelling string, pronunciations []*Pronunciation, filler bool) *Word {
	w := &Word{
		Spelling:       spelling,
		Pronunciations: pronunciations,
		Filler:         filler,
	}
	for _, p := range pronunciations {
		p.word = w
	}
	return w
}

func (w *Word) String() string {
	return w.Spelling
}

// Pronunciation is one ordered way to say a word. Units are interned
// references; Probability is fixed at 1.0 for everything produced by the
// loader (the source format carries no probabilities).
type Pronunciation struct {
	Units       []*Unit
	Probability float32

	word *Word
}

// NewPronunciation creates a pronunciation with unit probability 1.0 and no
// owning word yet. NewWord binds the back-reference during word building.
func NewPronunciation(units []*Unit) *Pronunciation {
	return &Pronunciation{Units: units, Probability: 1.0}
}

// Word returns the owning word, or nil before word building has run.
func (p *Pronunciation) Word() *Word {
	return p.word
}

func (p *Pronunciation) String() string {
	names := make([]string, len(p.Units))
	for i, u := range p.Units {
		names[i] = u.Name
	}
	spelling := ""
	if p.word != nil {
		spelling = p.word.Spelling
	}
	return spelling + "(" + strings.Join(names, " ") + ")"
}
