// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package algorithms

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ErrEmptyVocabulary is returned when no document yields a usable term.
var ErrEmptyVocabulary = errors.New("empty vocabulary; documents contain only stop words")

// minTokenRunes is the shortest token kept by Tokenize.
const minTokenRunes = 2

// Tokenize lowercases text and splits it into runs of letters, digits and
// underscores. Runs shorter than two runes and stop words are dropped.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	tokens := make([]string, 0, 8)

	start, runes := -1, 0
	flush := func(end int) {
		if start >= 0 && runes >= minTokenRunes {
			if tok := text[start:end]; !IsStopWord(tok) {
				tokens = append(tokens, tok)
			}
		}
		start, runes = -1, 0
	}

	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(text))
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// sparseVector is an L2-normalized TF-IDF row with ascending term indices.
type sparseVector struct {
	terms   []int
	weights []float64
}

// dot returns the inner product of two sparse vectors.
func (v sparseVector) dot(o sparseVector) float64 {
	var s float64
	i, j := 0, 0
	for i < len(v.terms) && j < len(o.terms) {
		switch {
		case v.terms[i] == o.terms[j]:
			s += v.weights[i] * o.weights[j]
			i++
			j++
		case v.terms[i] < o.terms[j]:
			i++
		default:
			j++
		}
	}
	return s
}

// tfidfModel is a fitted vectorizer: vocabulary, smoothed IDF, and the
// normalized document vectors.
type tfidfModel struct {
	vocabulary map[string]int
	idf        []float64
	vectors    []sparseVector
}

// fitTFIDF vectorizes docs with raw term counts and smoothed inverse
// document frequency, idf = ln((1+n)/(1+df)) + 1, then L2-normalizes rows.
func fitTFIDF(docs []string) (*tfidfModel, error) {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokenized[i] = Tokenize(doc)
		seen := make(map[string]struct{}, len(tokenized[i]))
		for _, tok := range tokenized[i] {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m := &tfidfModel{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		vectors:    make([]sparseVector, len(docs)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		m.vocabulary[term] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	for i, toks := range tokenized {
		m.vectors[i] = m.vectorize(toks)
	}
	return m, nil
}

func (m *tfidfModel) vectorize(tokens []string) sparseVector {
	counts := make(map[int]float64, len(tokens))
	for _, tok := range tokens {
		if idx, ok := m.vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	v := sparseVector{
		terms:   make([]int, 0, len(counts)),
		weights: make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		v.terms = append(v.terms, idx)
	}
	sort.Ints(v.terms)

	var norm float64
	for _, idx := range v.terms {
		w := counts[idx] * m.idf[idx]
		v.weights = append(v.weights, w)
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for k := range v.weights {
			v.weights[k] /= norm
		}
	}
	return v
}
