//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// unicodeTokenizer handles multilingual text. It applies NFKC normalization,
// lowercases, replaces punctuation and symbols with spaces, isolates each CJK
// ideograph as its own token, and splits on whitespace.
type unicodeTokenizer struct {
	opts *options
}

// NewUnicode creates a Unicode-aware tokenizer for languages the ASCII
// tokenizer cannot represent. Stemming, when configured, applies to tokens
// whose rune count exceeds the minimum length.
func NewUnicode(opt ...Option) Tokenizer {
	return &unicodeTokenizer{opts: newOptions(opt...)}
}

// Tokenize normalizes, segments, and optionally stems the input text.
func (t *unicodeTokenizer) Tokenize(text string) []string {
	text = norm.NFKC.String(text)
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsControl(r):
			b.WriteByte(' ')
		case isCJK(r):
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}

	parts := strings.Fields(b.String())
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if t.opts.stemmer != nil && utf8.RuneCountInString(token) > t.opts.minStemLength {
			token = t.opts.stemmer.Stem(token)
		}
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// cjkRanges covers the CJK ideograph blocks that are segmented per character,
// the same blocks BERT-style tokenizers pad with spaces.
var cjkRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1},
		{Lo: 0x2A700, Hi: 0x2B73F, Stride: 1},
		{Lo: 0x2B740, Hi: 0x2B81F, Stride: 1},
		{Lo: 0x2B820, Hi: 0x2CEAF, Stride: 1},
		{Lo: 0x2F800, Hi: 0x2FA1F, Stride: 1},
	},
}

// isCJK reports whether the rune is a CJK ideograph.
func isCJK(r rune) bool {
	return unicode.Is(cjkRanges, r)
}
