//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"trpc.group/trpc-go/trpc-rouge-go/sentence"
	"trpc.group/trpc-go/trpc-rouge-go/tokenizer"
)

// options holds Scorer configuration.
type options struct {
	// language selects the built-in tokenizer and stemmer.
	language string
	// useStemmer enables stemming with the language's registered stemmer.
	useStemmer bool
	// minStemLength is the minimum token length eligible for stemming.
	minStemLength int
	// tokenizer overrides the built-in tokenizer when provided.
	tokenizer tokenizer.Tokenizer
	// stemmer overrides the language's registered stemmer when provided.
	stemmer tokenizer.Stemmer
	// splitter segments summaries into sentences for rougeLsum.
	splitter sentence.Splitter
}

// newOptions applies functional options over the defaults.
func newOptions(opt ...Option) *options {
	opts := &options{
		language:      tokenizer.DefaultLanguage,
		minStemLength: tokenizer.DefaultMinStemLength,
		splitter:      sentence.Lines{},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a Scorer.
type Option func(*options)

// WithLanguage selects the language whose registered tokenizer and stemmer
// are used. Alternate language names are resolved through the alias table.
func WithLanguage(lang string) Option {
	return func(o *options) {
		o.language = lang
	}
}

// WithStemming enables or disables stemming with the stemmer registered for
// the configured language.
func WithStemming(enabled bool) Option {
	return func(o *options) {
		o.useStemmer = enabled
	}
}

// WithMinStemLength overrides the minimum token length for stemming.
func WithMinStemLength(length int) Option {
	return func(o *options) {
		o.minStemLength = length
	}
}

// WithTokenizer replaces the built-in tokenization entirely. The tokenizer
// must be deterministic; it is also responsible for any stemming it wants.
func WithTokenizer(tok tokenizer.Tokenizer) Option {
	return func(o *options) {
		o.tokenizer = tok
	}
}

// WithStemmer replaces the language's registered stemmer and implies that
// stemming is enabled.
func WithStemmer(stemmer tokenizer.Stemmer) Option {
	return func(o *options) {
		o.stemmer = stemmer
		o.useStemmer = true
	}
}

// WithSentenceSplitter replaces the newline rule used to segment summaries
// for rougeLsum, for example with sentence.NewPunkt.
func WithSentenceSplitter(splitter sentence.Splitter) Option {
	return func(o *options) {
		o.splitter = splitter
	}
}
