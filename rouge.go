//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package rouge computes ROUGE similarity scores between a reference text and
// a candidate text. Supported variants are rougeN for any positive N (n-gram
// overlap), rougeL (sentence-level longest common subsequence), and rougeLsum
// (summary-level union LCS).
package rouge

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/trpc-rouge-go/lcs"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/ngram"
	"trpc.group/trpc-go/trpc-rouge-go/score"
	"trpc.group/trpc-go/trpc-rouge-go/sentence"
	"trpc.group/trpc-go/trpc-rouge-go/tokenizer"
)

// ErrInvalidRougeType reports a ROUGE variant name that is not "rouge"
// followed by a positive integer, "rougeL", or "rougeLsum".
var ErrInvalidRougeType = errors.New("invalid rouge type")

const (
	// typeRougeL is the sentence-level LCS variant.
	typeRougeL = "rougeL"
	// typeRougeLsum is the summary-level union-LCS variant.
	typeRougeLsum = "rougeLsum"
	// typePrefix prefixes every valid variant name.
	typePrefix = "rouge"
)

// Scorer computes the configured ROUGE variants for target/prediction pairs.
// A Scorer is immutable after construction and safe for concurrent use as
// long as its tokenizer and sentence splitter are.
type Scorer struct {
	// rougeTypes holds the validated variant names to compute.
	rougeTypes []string
	// tok produces token sequences from input text.
	tok tokenizer.Tokenizer
	// splitter segments summaries into sentences for rougeLsum.
	splitter sentence.Splitter
}

// New builds a Scorer for the given ROUGE variants. Invalid variant names are
// rejected here, all of them reported together, so that Score never produces
// a partial result map.
func New(rougeTypes []string, opt ...Option) (*Scorer, error) {
	var verr error
	for _, rougeType := range rougeTypes {
		if err := validateRougeType(rougeType); err != nil {
			verr = multierror.Append(verr, err)
		}
	}
	if verr != nil {
		return nil, verr
	}

	opts := newOptions(opt...)
	tok := opts.tokenizer
	if tok == nil {
		tok = buildTokenizer(opts)
	}
	return &Scorer{
		rougeTypes: append([]string(nil), rougeTypes...),
		tok:        tok,
		splitter:   opts.splitter,
	}, nil
}

// buildTokenizer assembles the language tokenizer with optional stemming.
func buildTokenizer(opts *options) tokenizer.Tokenizer {
	tokOpt := []tokenizer.Option{tokenizer.WithMinStemLength(opts.minStemLength)}
	if opts.useStemmer {
		stemmer := opts.stemmer
		if stemmer == nil {
			registered, ok := tokenizer.StemmerFor(opts.language)
			if !ok {
				log.Warnf("unknown stemmer language %q, stemming disabled", opts.language)
			}
			stemmer = registered
		}
		if stemmer != nil {
			tokOpt = append(tokOpt, tokenizer.WithStemmer(stemmer))
		}
	}
	return tokenizer.ForLanguage(opts.language, tokOpt...)
}

// Score computes every configured variant for one target/prediction pair and
// returns a map keyed by variant name. Empty inputs are not an error and
// yield zero scores; an invalid variant aborts the whole call.
func (s *Scorer) Score(ctx context.Context, target, prediction string) (map[string]score.Score, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var targetTokens, predTokens []string
	tokenized := false
	ensureTokens := func() {
		if tokenized {
			return
		}
		targetTokens = s.tok.Tokenize(target)
		predTokens = s.tok.Tokenize(prediction)
		tokenized = true
	}

	result := make(map[string]score.Score, len(s.rougeTypes))
	for _, rougeType := range s.rougeTypes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch rougeType {
		case typeRougeL:
			ensureTokens()
			result[rougeType] = lcs.ScoreSentence(targetTokens, predTokens)
		case typeRougeLsum:
			sc, err := s.scoreSummary(target, prediction)
			if err != nil {
				return nil, err
			}
			result[rougeType] = sc
		default:
			n, err := parseRougeN(rougeType)
			if err != nil {
				return nil, err
			}
			ensureTokens()
			result[rougeType] = ngram.Score(
				ngram.Count(targetTokens, n),
				ngram.Count(predTokens, n),
			)
		}
	}
	return result, nil
}

// ScoreMulti scores a prediction against multiple reference targets and keeps
// the best score per variant, ranked by F-measure.
func (s *Scorer) ScoreMulti(ctx context.Context, targets []string, prediction string) (map[string]score.Score, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("targets are empty")
	}
	best := make(map[string]score.Score, len(s.rougeTypes))
	for i, target := range targets {
		scores, err := s.Score(ctx, target, prediction)
		if err != nil {
			return nil, err
		}
		for k, v := range scores {
			if i == 0 || v.FMeasure > best[k].FMeasure {
				best[k] = v
			}
		}
	}
	return best, nil
}

// scoreSummary segments both inputs into sentences, tokenizes each sentence
// independently, and applies the summary-level union-LCS scorer.
func (s *Scorer) scoreSummary(target, prediction string) (score.Score, error) {
	targetSents, err := s.splitter.Split(target)
	if err != nil {
		return score.Score{}, err
	}
	predSents, err := s.splitter.Split(prediction)
	if err != nil {
		return score.Score{}, err
	}

	targetTokens := make([][]string, 0, len(targetSents))
	for _, sent := range targetSents {
		targetTokens = append(targetTokens, s.tok.Tokenize(sent))
	}
	predTokens := make([][]string, 0, len(predSents))
	for _, sent := range predSents {
		predTokens = append(predTokens, s.tok.Tokenize(sent))
	}
	return lcs.ScoreSummary(targetTokens, predTokens), nil
}

// Compute scores a single pair with a one-off Scorer built from opt.
func Compute(ctx context.Context, target, prediction string, rougeTypes []string, opt ...Option) (map[string]score.Score, error) {
	scorer, err := New(rougeTypes, opt...)
	if err != nil {
		return nil, err
	}
	return scorer.Score(ctx, target, prediction)
}

// validateRougeType checks a variant name such as rouge1, rougeL, or rougeLsum.
func validateRougeType(rougeType string) error {
	if rougeType == typeRougeL || rougeType == typeRougeLsum {
		return nil
	}
	_, err := parseRougeN(rougeType)
	return err
}

// parseRougeN parses a rougeN variant name and returns N.
func parseRougeN(rougeType string) (int, error) {
	if !strings.HasPrefix(rougeType, typePrefix) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRougeType, rougeType)
	}
	nStr := strings.TrimPrefix(rougeType, typePrefix)
	if nStr == "" {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRougeType, rougeType)
	}
	n, err := strconv.Atoi(nStr)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRougeType, rougeType)
	}
	return n, nil
}
