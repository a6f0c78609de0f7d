package corpusrepo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// encodeCorpus renders the corpus in its canonical on-disk form: two-space
// indented JSON with a trailing newline. Equal corpora encode to equal bytes.
func encodeCorpus(entries []faq.Entry) ([]byte, error) {
	if entries == nil {
		entries = []faq.Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpus, "encode faq corpus", err)
	}
	return buf.Bytes(), nil
}

func decodeCorpus(data []byte) ([]faq.Entry, error) {
	var entries []faq.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpus, "decode faq corpus", err)
	}
	if err := validateCorpus(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func validateCorpus(entries []faq.Entry) error {
	for i, entry := range entries {
		if strings.TrimSpace(entry.QuestionEN) == "" || strings.TrimSpace(entry.AnswerEN) == "" {
			return apperrors.Wrap(apperrors.CodeCorpus, fmt.Sprintf("faq entry %d: question_en and answer_en are required", i), nil)
		}
	}
	return nil
}
