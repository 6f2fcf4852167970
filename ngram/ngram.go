//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package ngram builds and compares n-gram multisets for ROUGE-N scoring.
package ngram

import (
	"strings"

	"trpc.group/trpc-go/trpc-rouge-go/score"
)

// sep joins the tokens of an n-gram key. NUL never appears in tokenized text,
// so distinct windows always produce distinct keys.
const sep = "\x00"

// Count builds a multiset of contiguous n-token windows over tokens,
// sliding with stride 1. A sequence shorter than n yields an empty multiset.
func Count(tokens []string, n int) map[string]int {
	if n <= 0 || len(tokens) < n {
		return map[string]int{}
	}
	ngrams := make(map[string]int, len(tokens)-n+1)
	for i := 0; i <= len(tokens)-n; i++ {
		ngrams[strings.Join(tokens[i:i+n], sep)]++
	}
	return ngrams
}

// Total returns the total number of occurrences in a multiset.
func Total(ngrams map[string]int) int {
	total := 0
	for _, cnt := range ngrams {
		total += cnt
	}
	return total
}

// Score compares a target multiset against a prediction multiset.
// The intersection iterates the target's n-gram universe, crediting each
// n-gram with the smaller of the two occurrence counts. Divisors are clamped
// to at least 1 so that empty inputs score zero instead of dividing by zero.
func Score(targetNGrams, predNGrams map[string]int) score.Score {
	intersection := 0
	for key, cnt := range targetNGrams {
		if predCnt := predNGrams[key]; predCnt < cnt {
			intersection += predCnt
		} else {
			intersection += cnt
		}
	}

	precision := float64(intersection) / float64(max(Total(predNGrams), 1))
	recall := float64(intersection) / float64(max(Total(targetNGrams), 1))
	return score.New(precision, recall)
}
