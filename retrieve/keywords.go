package retrieve

import (
	"strings"
	"unicode"
)

// Stopwords filtered out of questions before matching. The ontology mixes
// French and English annotations, so both lists apply.
var stopwordsFR = []string{
	"le", "la", "les", "de", "des", "du", "et", "ou", "est", "sont", "un", "une",
	"en", "pour", "que", "qui", "quoi", "quel", "quelle", "quels", "quelles",
	"avec", "sans", "dans", "sur", "sous", "par", "ce", "cet", "cette", "ces",
	"mon", "ma", "mes", "ton", "ta", "tes", "son", "sa", "ses", "notre", "nos",
	"votre", "vos", "leur", "leurs", "je", "tu", "il", "elle", "nous", "vous",
	"ils", "elles", "comment", "pourquoi", "quand", "où",
}

var stopwordsEN = []string{
	"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "should",
	"can", "could", "may", "might", "must", "and", "or", "but", "if", "of",
	"at", "by", "for", "with", "about", "to", "in", "on", "what", "which",
	"who", "whom", "this", "that", "these", "those", "how", "why", "when",
	"where", "it", "its",
}

var stopwords = func() map[string]bool {
	set := make(map[string]bool, len(stopwordsFR)+len(stopwordsEN))
	for _, w := range stopwordsFR {
		set[w] = true
	}
	for _, w := range stopwordsEN {
		set[w] = true
	}
	return set
}()

// ExtractKeywords lowercases a question, strips punctuation (keeping hyphens
// inside words), drops stopwords and short tokens, and adds de-hyphenated
// variants so "covid-19" also matches "covid19" and "covid 19".
func ExtractKeywords(question string) []string {
	if question == "" {
		return nil
	}

	var sb strings.Builder
	for _, r := range strings.ToLower(question) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || unicode.IsSpace(r):
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	seen := make(map[string]bool)
	var keywords []string
	add := func(w string) {
		if len([]rune(w)) > 2 && !stopwords[w] && !seen[w] {
			seen[w] = true
			keywords = append(keywords, w)
		}
	}

	words := strings.Fields(sb.String())
	for _, w := range words {
		w = strings.Trim(w, "-")
		if w == "" {
			continue
		}
		add(w)
		if strings.Contains(w, "-") {
			add(strings.ReplaceAll(w, "-", ""))
			add(strings.ReplaceAll(w, "-", " "))
		}
	}
	return keywords
}
