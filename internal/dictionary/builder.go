package dictionary

import "github.com/klattlab/pronlex/internal/domain"

// buildWords finalizes the parser's spelling → pronunciation-list multi-map
// into a spelling → Word map. Variant order is preserved, no entry is
// dropped, and each pronunciation's owning-word back-reference is bound
// during word construction.
func buildWords(prons map[string][]*domain.Pronunciation, fillerDict bool) map[string]*domain.Word {
	words := make(map[string]*domain.Word, len(prons))
	for spelling, list := range prons {
		words[spelling] = domain.NewWord(spelling, list, fillerDict)
	}
	return words
}
