package faq

import (
	"math/rand"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

const (
	defaultSemanticHashPlanes = 8
	defaultSemanticHashSeed   = 1337
)

// semanticHasher converts embedding vectors into deterministic binary hashes
// using random projection planes. Planes are fixed at construction.
type semanticHasher struct {
	dims   int
	planes [][]float32
}

func newSemanticHasher(planeCount int, seed int64, dims int) *semanticHasher {
	if planeCount <= 0 {
		planeCount = defaultSemanticHashPlanes
	}
	if planeCount > 64 {
		planeCount = 64
	}
	rng := rand.New(rand.NewSource(seed)) // deterministic planes
	planes := make([][]float32, planeCount)
	for i := range planes {
		plane := make([]float32, dims)
		for j := range plane {
			plane[j] = float32(rng.NormFloat64())
		}
		planes[i] = plane
	}
	return &semanticHasher{dims: dims, planes: planes}
}

func (h *semanticHasher) Hash(vector []float32) (uint64, bool) {
	if h == nil || h.dims == 0 || len(vector) != h.dims {
		return 0, false
	}
	var hash uint64
	for i, plane := range h.planes {
		if dot(vector, plane) >= 0 {
			hash |= 1 << (63 - i)
		}
	}
	return hash, true
}

// lshIndex buckets entries by semantic hash and only ranks the query's
// bucket, falling back to a full scan when that bucket is empty.
type lshIndex struct {
	entries []Entry
	hashers map[locale.Locale]*semanticHasher
	buckets map[locale.Locale]map[uint64][]int
}

// NewLSHIndex builds an approximate index with planeCount projections.
func NewLSHIndex(entries []Entry, planeCount int) Index {
	idx := &lshIndex{
		entries: entries,
		hashers: make(map[locale.Locale]*semanticHasher),
		buckets: make(map[locale.Locale]map[uint64][]int),
	}
	for _, loc := range Locales {
		dims := 0
		for _, e := range entries {
			if v := e.Embedding(loc); len(v) > 0 {
				dims = len(v)
				break
			}
		}
		hasher := newSemanticHasher(planeCount, defaultSemanticHashSeed, dims)
		buckets := make(map[uint64][]int)
		for pos, e := range entries {
			if hash, ok := hasher.Hash(e.Embedding(loc)); ok {
				buckets[hash] = append(buckets[hash], pos)
			}
		}
		idx.hashers[loc] = hasher
		idx.buckets[loc] = buckets
	}
	return idx
}

func (i *lshIndex) Nearest(loc locale.Locale, query []float32) (Match, bool) {
	if hash, ok := i.hashers[loc].Hash(query); ok {
		if candidates := i.buckets[loc][hash]; len(candidates) > 0 {
			return scan(i.entries, loc, query, candidates)
		}
	}
	return scan(i.entries, loc, query, nil)
}
