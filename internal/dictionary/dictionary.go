// Package dictionary loads a pronunciation lexicon from line-oriented ASCII
// dictionaries (one spelling plus its phone sequence per line) and answers
// word lookups against the loaded maps.
//
// Two independent dictionaries are loaded: the word dictionary and the
// filler dictionary (silence, noise and other non-lexical entries). Loading
// is a one-time, idempotent allocation; queries are only defined between
// Allocate and Deallocate.
package dictionary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/klattlab/pronlex/internal/domain"
	"github.com/klattlab/pronlex/internal/metrics"
	"github.com/klattlab/pronlex/internal/unit"
	"github.com/klattlab/pronlex/pkg/timing"
)

// Opener resolves a source location into a readable stream. The resource
// package provides the production implementation; tests substitute their
// own.
type Opener func(ctx context.Context, location string) (io.ReadCloser, error)

// Options configures a Dictionary.
type Options struct {
	// WordLocation and FillerLocation are the two source streams.
	WordLocation   string
	FillerLocation string

	// AddendaLocations is accepted for construction compatibility but is
	// never consulted by the loader.
	AddendaLocations []string

	// AddSilEnding duplicates every word-dictionary pronunciation with a
	// trailing silence unit. Filler entries are never duplicated.
	AddSilEnding bool

	// Replacement, when non-empty, is looked up in place of any missing
	// spelling. It takes precedence over the missing-word flags below.
	Replacement string

	// AllowMissing tolerates lookups for unknown spellings; CreateMissing
	// additionally records an empty word for them so later lookups succeed.
	AllowMissing  bool
	CreateMissing bool
}

type state int

const (
	stateUnloaded state = iota
	stateLoaded
)

// Dictionary is the loaded lexicon. Not safe for concurrent use: GetWord may
// mutate the word map (missing-word creation), so callers serialize access.
type Dictionary struct {
	log   *slog.Logger
	units *unit.Manager
	open  Opener
	opts  Options

	state   state
	words   map[string]*domain.Word
	fillers map[string]*domain.Word
}

// New creates an unloaded Dictionary. Call Allocate before querying.
func New(logger *slog.Logger, units *unit.Manager, open Opener, opts Options) *Dictionary {
	return &Dictionary{
		log:   logger.With(slog.String("component", "dictionary")),
		units: units,
		open:  open,
		opts:  opts,
	}
}

// Allocate loads both dictionaries. It is idempotent: a second call while
// loaded is a no-op. On any failure the dictionary stays unloaded and all
// opened streams are closed.
func (d *Dictionary) Allocate(ctx context.Context) error {
	if d.state == stateLoaded {
		return nil
	}

	t := timing.Start("dictionary.load")

	words, err := d.loadFrom(ctx, d.opts.WordLocation, false)
	if err != nil {
		return err
	}
	fillers, err := d.loadFrom(ctx, d.opts.FillerLocation, true)
	if err != nil {
		return err
	}

	d.words = words
	d.fillers = fillers
	d.state = stateLoaded

	elapsed := t.Stop()
	metrics.LoadSeconds.Observe(elapsed.Seconds())
	metrics.DictionaryWords.WithLabelValues("word").Set(float64(len(words)))
	metrics.DictionaryWords.WithLabelValues("filler").Set(float64(len(fillers)))

	d.log.Info("dictionary loaded",
		slog.Int("words", len(words)),
		slog.Int("fillers", len(fillers)),
		slog.Int("units", d.units.Size()),
		slog.Duration("elapsed", elapsed),
	)
	if d.log.Enabled(ctx, slog.LevelDebug) {
		dump, _ := d.Dump()
		d.log.Debug("dictionary contents", slog.String("dump", dump))
	}
	return nil
}

// Deallocate discards both maps. A later Allocate reloads from scratch.
func (d *Dictionary) Deallocate() {
	if d.state != stateLoaded {
		return
	}
	d.words = nil
	d.fillers = nil
	d.state = stateUnloaded
	metrics.DictionaryWords.WithLabelValues("word").Set(0)
	metrics.DictionaryWords.WithLabelValues("filler").Set(0)
}

// Loaded reports whether the dictionary is in the loaded state.
func (d *Dictionary) Loaded() bool {
	return d.state == stateLoaded
}

func (d *Dictionary) loadFrom(ctx context.Context, location string, fillerDict bool) (map[string]*domain.Word, error) {
	d.log.Info("loading dictionary",
		slog.String("location", location),
		slog.Bool("filler", fillerDict),
	)

	rc, err := d.open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", location, err)
	}
	defer rc.Close()

	p := &parser{units: d.units, addSilEnding: d.opts.AddSilEnding}
	prons, err := p.parse(rc, fillerDict)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", location, err)
	}
	return buildWords(prons, fillerDict), nil
}

// Lookup resolves a normalized spelling directly against the two maps: the
// word map first, the filler map as fallback. No replacement or
// missing-word policy applies.
func (d *Dictionary) Lookup(spelling string) (*domain.Word, error) {
	if d.state != stateLoaded {
		return nil, domain.ErrNotLoaded
	}
	if w := d.lookup(strings.ToLower(spelling)); w != nil {
		return w, nil
	}
	return nil, fmt.Errorf("lookup %q: %w", spelling, domain.ErrNotFound)
}

func (d *Dictionary) lookup(spelling string) *domain.Word {
	if w, ok := d.words[spelling]; ok {
		return w
	}
	return d.fillers[spelling]
}

// GetWord resolves a spelling through the full missing-word policy:
//
//  1. Direct lookup (word map, then filler map).
//  2. If a replacement spelling is configured, return whatever it resolves
//     to; a missing replacement is logged as an error but is not fatal.
//  3. Otherwise, if missing words are allowed and creation is enabled, an
//     empty word is recorded for the spelling — but this call still reports
//     not-found. Only subsequent calls observe the created word.
//
// The create-but-miss behavior on the first call is deliberate and matches
// the decoder this loader was built for; see the regression test.
func (d *Dictionary) GetWord(text string) (*domain.Word, error) {
	if d.state != stateLoaded {
		return nil, domain.ErrNotLoaded
	}

	spelling := strings.ToLower(text)
	if w := d.lookup(spelling); w != nil {
		metrics.LookupsTotal.WithLabelValues(metrics.ResultHit).Inc()
		return w, nil
	}

	d.log.Warn("missing word", slog.String("spelling", spelling))
	metrics.MissingWordsTotal.Inc()

	if d.opts.Replacement != "" {
		d.log.Warn("replacing word",
			slog.String("spelling", spelling),
			slog.String("replacement", d.opts.Replacement),
		)
		if w := d.lookup(d.opts.Replacement); w != nil {
			metrics.LookupsTotal.WithLabelValues(metrics.ResultReplaced).Inc()
			return w, nil
		}
		d.log.Error("replacement word not found",
			slog.String("replacement", d.opts.Replacement),
		)
	} else if d.opts.AllowMissing && d.opts.CreateMissing {
		d.words[spelling] = domain.NewWord(spelling, nil, false)
	}

	metrics.LookupsTotal.WithLabelValues(metrics.ResultMiss).Inc()
	return nil, fmt.Errorf("word %q: %w", spelling, domain.ErrNotFound)
}

// SentenceStartWord resolves the sentence-start marker.
func (d *Dictionary) SentenceStartWord() (*domain.Word, error) {
	return d.GetWord(domain.SentenceStartSpelling)
}

// SentenceEndWord resolves the sentence-end marker.
func (d *Dictionary) SentenceEndWord() (*domain.Word, error) {
	return d.GetWord(domain.SentenceEndSpelling)
}

// SilenceWord resolves the silence word.
func (d *Dictionary) SilenceWord() (*domain.Word, error) {
	return d.GetWord(domain.SilenceSpelling)
}

// FillerWords returns every word loaded from the filler dictionary, in map
// iteration order.
func (d *Dictionary) FillerWords() ([]*domain.Word, error) {
	if d.state != stateLoaded {
		return nil, domain.ErrNotLoaded
	}
	out := make([]*domain.Word, 0, len(d.fillers))
	for _, w := range d.fillers {
		out = append(out, w)
	}
	return out, nil
}

// PossibleWordClassifications always returns nil. Classifications were never
// implemented for this dictionary format; the method exists to complete the
// lookup surface.
func (d *Dictionary) PossibleWordClassifications() []string {
	return nil
}

// Dump renders every loaded word and its pronunciations, sorted by spelling.
// Intended for diagnostics, not machine consumption.
func (d *Dictionary) Dump() (string, error) {
	if d.state != stateLoaded {
		return "", domain.ErrNotLoaded
	}

	spellings := make([]string, 0, len(d.words)+len(d.fillers))
	seen := make(map[string]bool, len(d.words)+len(d.fillers))
	for s := range d.words {
		spellings = append(spellings, s)
		seen[s] = true
	}
	for s := range d.fillers {
		if !seen[s] {
			spellings = append(spellings, s)
		}
	}
	sort.Strings(spellings)

	var b strings.Builder
	for _, s := range spellings {
		w := d.lookup(s)
		b.WriteString(w.Spelling)
		b.WriteByte('\n')
		for _, p := range w.Pronunciations {
			b.WriteString("   ")
			b.WriteString(p.String())
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// WordLocation returns the word dictionary source location.
func (d *Dictionary) WordLocation() string {
	return d.opts.WordLocation
}

// FillerLocation returns the filler dictionary source location.
func (d *Dictionary) FillerLocation() string {
	return d.opts.FillerLocation
}

func (d *Dictionary) String() string {
	return fmt.Sprintf("pronlex dictionary: %d words from %s", len(d.words), d.opts.WordLocation)
}
