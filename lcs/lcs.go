//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package lcs implements longest common subsequence computation and the
// sentence-level and summary-level ROUGE-L scorers built on it.
package lcs

import (
	"sort"

	"trpc.group/trpc-go/trpc-rouge-go/score"
)

// Table builds the (len(ref)+1) x (len(can)+1) dynamic programming table.
// table[i][j] is the LCS length of the first i reference tokens and the
// first j candidate tokens; the border row and column are zero. Time and
// space are O(len(ref)*len(can)), so callers should keep inputs at
// sentence scale.
func Table(ref, can []string) [][]int {
	rows := len(ref)
	cols := len(can)
	table := make([][]int, rows+1)
	for i := range table {
		table[i] = make([]int, cols+1)
	}
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			if ref[i-1] == can[j-1] {
				table[i][j] = table[i-1][j-1] + 1
				continue
			}
			if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}

// Length computes the LCS length with two rolling rows instead of the full
// table, for callers that do not need to reconstruct the subsequence.
func Length(ref, can []string) int {
	if len(ref) == 0 || len(can) == 0 {
		return 0
	}
	prev := make([]int, len(can)+1)
	curr := make([]int, len(can)+1)
	for i := 1; i <= len(ref); i++ {
		curr[0] = 0
		for j := 1; j <= len(can); j++ {
			if ref[i-1] == can[j-1] {
				curr[j] = prev[j-1] + 1
				continue
			}
			if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(can)]
}

// Backtrack recovers the reference index positions of one LCS by walking the
// table from (len(ref), len(can)) toward the origin. Indices are returned in
// ascending order. When the two neighbor cells tie, the walk consumes the
// reference (moves up); it moves toward the candidate only when the left
// neighbor is strictly greater. Several subsequences of maximal length can
// exist, and this tie-break pins down which one is returned so that
// summary-level hit counts stay reproducible.
func Backtrack(table [][]int, ref, can []string) []int {
	i := len(ref)
	j := len(can)
	indices := make([]int, 0, table[i][j])
	for i > 0 && j > 0 {
		if ref[i-1] == can[j-1] {
			indices = append(indices, i-1)
			i--
			j--
		} else if table[i][j-1] > table[i-1][j] {
			j--
		} else {
			i--
		}
	}
	for left, right := 0, len(indices)-1; left < right; left, right = left+1, right-1 {
		indices[left], indices[right] = indices[right], indices[left]
	}
	return indices
}

// Indices returns the reference index positions of one LCS between ref and can.
func Indices(ref, can []string) []int {
	return Backtrack(Table(ref, can), ref, can)
}

// ScoreSentence computes sentence-level ROUGE-L for two token sequences.
// Either sequence being empty short-circuits to a zero score.
func ScoreSentence(target, prediction []string) score.Score {
	if len(target) == 0 || len(prediction) == 0 {
		return score.Score{}
	}
	lcsLen := Length(target, prediction)
	precision := float64(lcsLen) / float64(len(prediction))
	recall := float64(lcsLen) / float64(len(target))
	return score.New(precision, recall)
}

// ScoreSummary computes summary-level ROUGE-L (rougeLsum) over tokenized
// sentence lists. Each reference sentence contributes its union LCS against
// all candidate sentences, and per-token frequency budgets over both sides
// cap how often a repeated token may count as a hit.
func ScoreSummary(targetSents, predictionSents [][]string) score.Score {
	if len(targetSents) == 0 || len(predictionSents) == 0 {
		return score.Score{}
	}

	m := 0
	for _, s := range targetSents {
		m += len(s)
	}
	n := 0
	for _, s := range predictionSents {
		n += len(s)
	}
	if m == 0 || n == 0 {
		return score.Score{}
	}

	tokenCntsR := make(map[string]int)
	tokenCntsC := make(map[string]int)
	for _, s := range targetSents {
		for _, tok := range s {
			tokenCntsR[tok]++
		}
	}
	for _, s := range predictionSents {
		for _, tok := range s {
			tokenCntsC[tok]++
		}
	}

	hits := 0
	for _, ref := range targetSents {
		for _, tok := range unionLCS(ref, predictionSents) {
			if tokenCntsC[tok] <= 0 || tokenCntsR[tok] <= 0 {
				continue
			}
			hits++
			tokenCntsC[tok]--
			tokenCntsR[tok]--
		}
	}

	recall := float64(hits) / float64(m)
	precision := float64(hits) / float64(n)
	return score.New(precision, recall)
}

// unionLCS maps the union of LCS index sets between ref and every candidate
// sentence back to the tokens of ref.
func unionLCS(ref []string, cans [][]string) []string {
	lcsList := make([][]int, 0, len(cans))
	for _, can := range cans {
		lcsList = append(lcsList, Indices(ref, can))
	}
	union := findUnion(lcsList)
	out := make([]string, 0, len(union))
	for _, idx := range union {
		out = append(out, ref[idx])
	}
	return out
}

// findUnion merges index sets into a sorted, duplicate-free slice.
func findUnion(lcsList [][]int) []int {
	seen := make(map[int]struct{})
	for _, indices := range lcsList {
		for _, idx := range indices {
			seen[idx] = struct{}{}
		}
	}
	union := make([]int, 0, len(seen))
	for idx := range seen {
		union = append(union, idx)
	}
	sort.Ints(union)
	return union
}
