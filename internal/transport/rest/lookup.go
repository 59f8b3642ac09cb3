// Package rest exposes the lexicon over HTTP: word lookup, filler listing,
// the diagnostic dump, and health probes.
package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/klattlab/pronlex/internal/domain"
)

// lexicon is the slice of the dictionary the lookup handlers need.
type lexicon interface {
	GetWord(text string) (*domain.Word, error)
	FillerWords() ([]*domain.Word, error)
	Dump() (string, error)
}

// LookupHandler serves lexicon queries. The dictionary core is single-writer
// (GetWord may record missing words), so a mutex serializes all access.
type LookupHandler struct {
	mu   sync.Mutex
	dict lexicon
	log  *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(dict lexicon, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		dict: dict,
		log:  logger.With(slog.String("handler", "lookup")),
	}
}

// WordResponse is the JSON shape of a resolved word.
type WordResponse struct {
	Spelling       string     `json:"spelling"`
	Filler         bool       `json:"filler"`
	Pronunciations [][]string `json:"pronunciations"`
}

// WordListResponse wraps a list of words.
type WordListResponse struct {
	Words []WordResponse `json:"words"`
}

func toWordResponse(w *domain.Word) WordResponse {
	prons := make([][]string, len(w.Pronunciations))
	for i, p := range w.Pronunciations {
		units := make([]string, len(p.Units))
		for j, u := range p.Units {
			units[j] = u.Name
		}
		prons[i] = units
	}
	return WordResponse{
		Spelling:       w.Spelling,
		Filler:         w.Filler,
		Pronunciations: prons,
	}
}

// Word handles GET /v1/words/{spelling}.
func (h *LookupHandler) Word(w http.ResponseWriter, r *http.Request) {
	spelling := r.PathValue("spelling")

	h.mu.Lock()
	word, err := h.dict.GetWord(spelling)
	h.mu.Unlock()

	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Fillers handles GET /v1/fillers.
func (h *LookupHandler) Fillers(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	fillers, err := h.dict.FillerWords()
	h.mu.Unlock()

	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	resp := WordListResponse{Words: make([]WordResponse, 0, len(fillers))}
	for _, f := range fillers {
		resp.Words = append(resp.Words, toWordResponse(f))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Dump handles GET /v1/dump with a plain-text sorted listing.
func (h *LookupHandler) Dump(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	dump, err := h.dict.Dump()
	h.mu.Unlock()

	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(dump)) //nolint:errcheck
}

func (h *LookupHandler) writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotLoaded):
		writeError(w, http.StatusServiceUnavailable, "dictionary not loaded")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "word not found")
	default:
		h.log.Error("lookup failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
