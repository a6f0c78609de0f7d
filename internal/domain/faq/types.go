package faq

import "github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"

// Entry is one bilingual FAQ record with its precomputed embeddings.
type Entry struct {
	QuestionEN     string    `json:"question_en"`
	QuestionAR     string    `json:"question_ar"`
	AnswerEN       string    `json:"answer_en"`
	AnswerAR       string    `json:"answer_ar"`
	// EmbeddingModel names the embedder that produced both vectors.
	EmbeddingModel string    `json:"embedding_model,omitempty"`
	EmbeddingEN    []float32 `json:"embedding_en,omitempty"`
	EmbeddingAR    []float32 `json:"embedding_ar,omitempty"`
}

// Question returns the question text for loc, falling back to English.
func (e Entry) Question(loc locale.Locale) string {
	if loc == locale.Arabic && e.QuestionAR != "" {
		return e.QuestionAR
	}
	return e.QuestionEN
}

// Answer returns the answer text for loc, falling back to English.
func (e Entry) Answer(loc locale.Locale) string {
	if loc == locale.Arabic && e.AnswerAR != "" {
		return e.AnswerAR
	}
	return e.AnswerEN
}

// Embedding returns the vector used to rank the entry for loc.
func (e Entry) Embedding(loc locale.Locale) []float32 {
	if loc == locale.Arabic {
		return e.EmbeddingAR
	}
	return e.EmbeddingEN
}

func (e *Entry) hasEmbedding() bool {
	return len(e.EmbeddingEN) > 0 || len(e.EmbeddingAR) > 0
}

func (e *Entry) clearEmbeddings() {
	e.EmbeddingEN = nil
	e.EmbeddingAR = nil
}

func (e *Entry) setEmbedding(loc locale.Locale, vector []float32) {
	if loc == locale.Arabic {
		e.EmbeddingAR = vector
		return
	}
	e.EmbeddingEN = vector
}

// Band classifies a similarity score against the thresholds.
type Band string

const (
	BandHigh Band = "high"
	BandLow  Band = "low"
	BandNone Band = "none"
)

// RetrievalResult is the outcome of a semantic lookup.
type RetrievalResult struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Matched    bool    `json:"matched"`
	Band       Band    `json:"band"`
	Question   string  `json:"question,omitempty"`
}

// Locales lists every corpus side that must carry an embedding.
var Locales = []locale.Locale{locale.English, locale.Arabic}
