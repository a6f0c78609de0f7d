package embedder

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/intent"
)

// DeterministicEmbedder avoids network calls by hashing normalized words
// into a bag-of-words vector. Texts sharing words score above zero, which
// is enough for offline runs and tests.
type DeterministicEmbedder struct {
	dim int
}

// NewDeterministicEmbedder constructs the embedder.
func NewDeterministicEmbedder(dim int) *DeterministicEmbedder {
	if dim <= 0 {
		dim = 64
	}
	return &DeterministicEmbedder{dim: dim}
}

// Model names the vector space, including the dimension.
func (e *DeterministicEmbedder) Model() string {
	return fmt.Sprintf("deterministic-%d", e.dim)
}

// Embed converts each text into a unit vector.
func (e *DeterministicEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector := make([]float32, e.dim)
		for _, token := range intent.Tokens(text) {
			hash := fnv.New64a()
			_, _ = hash.Write([]byte(token))
			vector[hash.Sum64()%uint64(e.dim)]++
		}
		normalize(vector)
		vectors[i] = vector
	}
	return vectors, nil
}

func normalize(vector []float32) {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vector {
		vector[i] /= norm
	}
}

var _ faq.Embedder = (*DeterministicEmbedder)(nil)
