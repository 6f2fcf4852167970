//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefault_Tokenize verifies lowercasing, punctuation stripping, and splitting.
func TestDefault_Tokenize(t *testing.T) {
	tok := NewDefault()

	assert.Equal(t, []string{"testing", "one", "two", "3"}, tok.Tokenize("Testing, one-two!! 3"))
	assert.Equal(t, []string{"a", "b"}, tok.Tokenize("  A\t\nb "))
	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("!!! ???"))
}

// TestDefault_NonASCIIDropped verifies that the ASCII tokenizer drops non-Latin text.
func TestDefault_NonASCIIDropped(t *testing.T) {
	tok := NewDefault()
	assert.Empty(t, tok.Tokenize("привет мир"))
}

// TestDefault_Stemming verifies that only tokens above the length threshold are stemmed.
func TestDefault_Stemming(t *testing.T) {
	tok := NewDefault(WithStemmer(Porter{}))

	assert.Equal(t, []string{"run", "cat"}, tok.Tokenize("running cats"))
	// "cat" has length 3 and stays below the default threshold.
	assert.Equal(t, []string{"cat"}, tok.Tokenize("cat"))
	// "cats" has length 4 and is stemmed.
	assert.Equal(t, []string{"cat"}, tok.Tokenize("cats"))
}

// TestDefault_MinStemLength verifies the configurable stemming threshold.
func TestDefault_MinStemLength(t *testing.T) {
	tok := NewDefault(WithStemmer(Porter{}), WithMinStemLength(10))
	assert.Equal(t, []string{"running"}, tok.Tokenize("running"))
}

// TestUnicode_Tokenize verifies normalization and CJK isolation.
func TestUnicode_Tokenize(t *testing.T) {
	tok := NewUnicode()

	assert.Equal(t, []string{"привет", "мир"}, tok.Tokenize("Привет, мир!"))
	assert.Equal(t, []string{"你", "好", "world"}, tok.Tokenize("你好，world！"))
	assert.Equal(t, []string{"hello"}, tok.Tokenize("Ｈｅｌｌｏ"))
	assert.Empty(t, tok.Tokenize("…！？"))
}

// TestFallback verifies the empty-output fallback to the Unicode tokenizer.
func TestFallback(t *testing.T) {
	tok := NewFallback(NewDefault())

	// ASCII handles English on its own.
	assert.Equal(t, []string{"hello", "world"}, tok.Tokenize("Hello world"))
	// Cyrillic reduces to nothing under the ASCII rules and falls back.
	assert.Equal(t, []string{"привет", "мир"}, tok.Tokenize("Привет мир"))
	// Blank input stays empty without triggering the fallback.
	assert.Empty(t, tok.Tokenize("   "))
}
