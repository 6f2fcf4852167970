//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package tokenizer provides the token and stem capabilities consumed by the
// ROUGE scorer, together with per-language defaults.
package tokenizer

import (
	"regexp"
	"strings"
)

// DefaultMinStemLength is the minimum token length that triggers stemming.
// Shorter tokens pass through unchanged.
const DefaultMinStemLength = 3

// Tokenizer produces an ordered token sequence from text. Implementations
// must be deterministic and may return an empty sequence for inputs that
// reduce to nothing under their rules.
type Tokenizer interface {
	// Tokenize splits input text into tokens.
	Tokenize(text string) []string
}

// Stemmer maps a token to a normalized root form. Implementations must be
// pure functions of the input token.
type Stemmer interface {
	// Stem returns the stem of a single token.
	Stem(token string) string
}

// options holds shared tokenizer configuration.
type options struct {
	// stemmer normalizes tokens above the length threshold when set.
	stemmer Stemmer
	// minStemLength is the minimum token length eligible for stemming.
	minStemLength int
}

// newOptions applies functional options over the defaults.
func newOptions(opt ...Option) *options {
	opts := &options{minStemLength: DefaultMinStemLength}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a tokenizer.
type Option func(*options)

// WithStemmer applies stemmer to every token longer than the configured
// minimum length. A nil stemmer disables stemming.
func WithStemmer(stemmer Stemmer) Option {
	return func(o *options) {
		o.stemmer = stemmer
	}
}

// WithMinStemLength overrides the minimum token length for stemming.
func WithMinStemLength(length int) Option {
	return func(o *options) {
		o.minStemLength = length
	}
}

var (
	// nonAlphaNumRE matches runs of characters outside lowercase ASCII alphanumerics.
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	// spacesRE matches runs of whitespace for token splitting.
	spacesRE = regexp.MustCompile(`\s+`)
	// validTokenRE matches a token of lowercase ASCII letters and digits.
	validTokenRE = regexp.MustCompile(`^[a-z0-9]+$`)
)

// asciiTokenizer replicates the tokenization used by google-research/rouge:
// lowercase, replace every non-alphanumeric run with a space, split on
// whitespace, and drop anything that is not a pure ASCII alphanumeric token.
type asciiTokenizer struct {
	opts *options
}

// NewDefault creates the default ASCII tokenizer. It matches the reference
// ROUGE implementation exactly and is the right choice for English text.
func NewDefault(opt ...Option) Tokenizer {
	return &asciiTokenizer{opts: newOptions(opt...)}
}

// Tokenize lowercases, strips non-alphanumerics, splits, and optionally stems.
func (t *asciiTokenizer) Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonAlphaNumRE.ReplaceAllString(text, " ")

	parts := spacesRE.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if token == "" || !validTokenRE.MatchString(token) {
			continue
		}
		if t.opts.stemmer != nil && len(token) > t.opts.minStemLength {
			token = t.opts.stemmer.Stem(token)
		}
		if token == "" || !validTokenRE.MatchString(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
