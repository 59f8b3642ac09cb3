package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/klattlab/pronlex/internal/domain"
	"github.com/klattlab/pronlex/internal/unit"
)

// maxLineBytes bounds a single dictionary line. Real pronunciation lines are
// tiny; the cap only guards against garbage input.
const maxLineBytes = 1 << 20

// parser turns one dictionary stream into a multi-map from normalized
// spelling to pronunciation variants, in file order.
type parser struct {
	units        *unit.Manager
	addSilEnding bool
}

// parse reads the stream line by line. Each non-blank line is one entry:
// a spelling token followed by zero or more phone tokens. The spelling is
// normalized (variant suffix stripped, lowercased); phones are interned with
// the stream's filler classification. A line with no phones still yields a
// pronunciation with an empty unit sequence.
//
// On a non-filler stream with addSilEnding set, every entry additionally
// yields a silence-suffixed copy of its pronunciation.
//
// The caller owns the stream and closes it on all paths.
func (p *parser) parse(r io.Reader, fillerDict bool) (map[string][]*domain.Pronunciation, error) {
	prons := make(map[string][]*domain.Pronunciation)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		spelling := domain.NormalizeSpelling(fields[0])

		units := make([]*domain.Unit, 0, len(fields)-1)
		for _, phone := range fields[1:] {
			units = append(units, p.units.Unit(phone, fillerDict))
		}
		prons[spelling] = append(prons[spelling], domain.NewPronunciation(units))

		if !fillerDict && p.addSilEnding {
			withSil := make([]*domain.Unit, len(units), len(units)+1)
			copy(withSil, units)
			withSil = append(withSil, p.units.Silence())
			prons[spelling] = append(prons[spelling], domain.NewPronunciation(withSil))
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary stream: %w", err)
	}
	return prons, nil
}
