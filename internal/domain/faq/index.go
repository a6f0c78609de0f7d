package faq

import "github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"

// Match points at a corpus position and its similarity to the query.
type Match struct {
	Position int
	Score    float64
}

// Index finds the corpus entry closest to a query embedding.
type Index interface {
	Nearest(loc locale.Locale, query []float32) (Match, bool)
}

type linearIndex struct {
	entries []Entry
}

// NewLinearIndex scans every entry; O(corpus x dimension) per query.
func NewLinearIndex(entries []Entry) Index {
	return &linearIndex{entries: entries}
}

func (i *linearIndex) Nearest(loc locale.Locale, query []float32) (Match, bool) {
	return scan(i.entries, loc, query, nil)
}

// scan ranks positions (or all entries when positions is nil). The first
// entry seen wins exact ties, so results follow corpus order.
func scan(entries []Entry, loc locale.Locale, query []float32, positions []int) (Match, bool) {
	best := Match{Position: -1}
	consider := func(pos int) {
		vector := entries[pos].Embedding(loc)
		if len(vector) != len(query) {
			return
		}
		score := Cosine(query, vector)
		if best.Position < 0 || score > best.Score {
			best = Match{Position: pos, Score: score}
		}
	}
	if positions == nil {
		for pos := range entries {
			consider(pos)
		}
	} else {
		for _, pos := range positions {
			consider(pos)
		}
	}
	return best, best.Position >= 0
}
