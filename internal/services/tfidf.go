package services

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"resume-analyzer/internal/models"
)

// stopWords filters common English words that add noise to term weighting.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "for": true,
	"with": true, "you": true, "are": true, "have": true, "will": true,
	"this": true, "that": true, "from": true, "our": true, "your": true,
	"their": true, "they": true, "about": true, "which": true, "what": true,
	"who": true, "how": true, "can": true, "not": true, "but": true,
	"all": true, "also": true, "more": true, "than": true, "into": true,
	"has": true, "its": true, "was": true, "were": true, "been": true,
	"each": true, "new": true, "use": true, "using": true, "used": true,
	"well": true, "such": true, "should": true, "would": true, "could": true,
	"must": true, "may": true, "of": true, "in": true, "on": true,
	"at": true, "to": true, "by": true, "or": true, "as": true,
	"is": true, "it": true, "be": true, "we": true, "us": true,
	"if": true, "do": true, "does": true, "did": true, "per": true,
	"any": true, "other": true, "some": true, "when": true, "where": true,
	"while": true, "through": true, "over": true, "under": true,
}

// Vectorizer computes TF-IDF weights over a small document set and derives
// cosine similarity and ranked top terms from them.
type Vectorizer struct {
	topTerms int
}

func NewVectorizer(topTerms int) *Vectorizer {
	if topTerms <= 0 {
		topTerms = 10
	}
	return &Vectorizer{topTerms: topTerms}
}

// Tokenize lowercases the text and splits it into terms. Letters, digits and
// the characters + # . count as word characters so terms like "c++", "c#"
// and "node.js" survive; trailing dots are trimmed. Stop words and
// single-rune tokens are dropped.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 2 && !stopWords[w] {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// Compare computes TF-IDF vectors over the two documents and returns their
// cosine similarity along with each document's top terms. An empty or
// whitespace-only document yields similarity 0 and an empty term list.
func (v *Vectorizer) Compare(docA, docB string) (float64, []models.TermWeight, []models.TermWeight) {
	tokensA := Tokenize(docA)
	tokensB := Tokenize(docB)

	weightsA, weightsB := tfidfWeights(tokensA, tokensB)

	similarity := 0.0
	if len(tokensA) > 0 && len(tokensB) > 0 {
		for term, wa := range weightsA {
			similarity += wa * weightsB[term]
		}
		similarity = clamp01(similarity)
	}

	return similarity, v.rankTerms(weightsA), v.rankTerms(weightsB)
}

// TopTerms ranks the terms of a single document. With one document every
// idf collapses to 1, so the ranking reduces to normalized term frequency.
func (v *Vectorizer) TopTerms(doc string) []models.TermWeight {
	tokens := Tokenize(doc)
	if len(tokens) == 0 {
		return []models.TermWeight{}
	}

	counts := termCounts(tokens)
	weights := make(map[string]float64, len(counts))
	total := float64(len(tokens))
	for term, count := range counts {
		weights[term] = float64(count) / total
	}
	normalize(weights)

	return v.rankTerms(weights)
}

// tfidfWeights builds L2-normalized TF-IDF vectors for a two-document
// collection, using smoothed idf: ln((1+n)/(1+df)) + 1.
func tfidfWeights(tokensA, tokensB []string) (map[string]float64, map[string]float64) {
	countsA := termCounts(tokensA)
	countsB := termCounts(tokensB)

	weightsA := make(map[string]float64, len(countsA))
	weightsB := make(map[string]float64, len(countsB))

	idf := func(term string) float64 {
		df := 0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	for term, count := range countsA {
		weightsA[term] = float64(count) / float64(len(tokensA)) * idf(term)
	}
	for term, count := range countsB {
		weightsB[term] = float64(count) / float64(len(tokensB)) * idf(term)
	}

	normalize(weightsA)
	normalize(weightsB)

	return weightsA, weightsB
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

func normalize(weights map[string]float64) {
	var sumSquares float64
	for _, w := range weights {
		sumSquares += w * w
	}
	if sumSquares == 0 {
		return
	}

	norm := math.Sqrt(sumSquares)
	for term, w := range weights {
		weights[term] = w / norm
	}
}

// rankTerms orders terms by weight descending, ties broken by term ascending
// so output is deterministic, and keeps the top N.
func (v *Vectorizer) rankTerms(weights map[string]float64) []models.TermWeight {
	ranked := make([]models.TermWeight, 0, len(weights))
	for term, weight := range weights {
		if weight > 0 {
			ranked = append(ranked, models.TermWeight{Term: term, Score: weight})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Term < ranked[j].Term
	})

	if len(ranked) > v.topTerms {
		ranked = ranked[:v.topTerms]
	}

	return ranked
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
