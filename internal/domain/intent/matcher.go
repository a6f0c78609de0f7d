package intent

import "strings"

// Matcher finds keyword phrases inside tokenized text.
type Matcher struct {
	phrases    [][]string
	prefixLast bool
}

// NewMatcher compiles phrases. With prefixLast the final token of a phrase
// may match the start of a word, so "flight" also hits "flights".
func NewMatcher(phrases []string, prefixLast bool) *Matcher {
	m := &Matcher{prefixLast: prefixLast}
	for _, p := range phrases {
		tokens := Tokens(p)
		if len(tokens) == 0 {
			continue
		}
		m.phrases = append(m.phrases, tokens)
	}
	return m
}

// Match returns the first phrase found in tokens.
func (m *Matcher) Match(tokens []string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, phrase := range m.phrases {
		if m.contains(tokens, phrase) {
			return strings.Join(phrase, " "), true
		}
	}
	return "", false
}

// MatchText tokenizes text before matching.
func (m *Matcher) MatchText(text string) (string, bool) {
	return m.Match(Tokens(text))
}

// Len is the number of compiled phrases.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.phrases)
}

func (m *Matcher) contains(tokens, phrase []string) bool {
	last := len(phrase) - 1
outer:
	for i := 0; i+last < len(tokens); i++ {
		for j, want := range phrase {
			got := tokens[i+j]
			if j == last && m.prefixLast {
				if !strings.HasPrefix(got, want) {
					continue outer
				}
				continue
			}
			if got != want {
				continue outer
			}
		}
		return true
	}
	return false
}
