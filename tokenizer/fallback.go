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

	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// fallbackTokenizer wraps a primary tokenizer and retries with the Unicode
// tokenizer when the primary yields nothing for non-blank text. The fallback
// is an observable policy: it logs a warning and never alters the result for
// inputs the primary can handle.
type fallbackTokenizer struct {
	primary  Tokenizer
	fallback Tokenizer
}

// NewFallback wraps primary with the empty-output fallback policy.
func NewFallback(primary Tokenizer, opt ...Option) Tokenizer {
	return &fallbackTokenizer{
		primary:  primary,
		fallback: NewUnicode(opt...),
	}
}

// Tokenize delegates to the primary tokenizer, falling back when it produces
// no tokens for text that is not blank.
func (t *fallbackTokenizer) Tokenize(text string) []string {
	tokens := t.primary.Tokenize(text)
	if len(tokens) == 0 && strings.TrimSpace(text) != "" {
		if _, isFallback := t.primary.(*unicodeTokenizer); !isFallback {
			log.Warnf("no tokens found using configured tokenizer, switching to default tokenizer")
			return t.fallback.Tokenize(text)
		}
	}
	return tokens
}
