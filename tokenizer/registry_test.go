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
	"github.com/stretchr/testify/require"
)

// TestCanonical verifies alias resolution and normalization.
func TestCanonical(t *testing.T) {
	assert.Equal(t, "bengali", Canonical("bangla"))
	assert.Equal(t, "bengali", Canonical("  Bangla "))
	assert.Equal(t, "turkish", Canonical("TURKCE"))
	assert.Equal(t, "chinese", Canonical("chinese_simplified"))
	assert.Equal(t, "chinese", Canonical("chinese_traditional"))
	assert.Equal(t, "spanish", Canonical("mundo"))
	assert.Equal(t, "english", Canonical("English"))
	assert.Equal(t, "klingon", Canonical("klingon"))
}

// TestStemmerFor verifies registry lookups for known and unknown languages.
func TestStemmerFor(t *testing.T) {
	english, ok := StemmerFor("english")
	require.True(t, ok)
	assert.Equal(t, "run", english.Stem("running"))

	for _, lang := range []string{"spanish", "french", "russian", "swedish", "norwegian", "hungarian", "mundo"} {
		stemmer, ok := StemmerFor(lang)
		require.True(t, ok, "language %s", lang)
		assert.NotEmpty(t, stemmer.Stem("palabras"))
	}

	_, ok = StemmerFor("klingon")
	assert.False(t, ok)
}

// TestNewSnowballEnglish verifies that the Snowball English stemmer is usable.
func TestNewSnowballEnglish(t *testing.T) {
	stemmer := NewSnowballEnglish()
	assert.Equal(t, "run", stemmer.Stem("running"))
}

// TestForLanguage verifies tokenizer selection by language.
func TestForLanguage(t *testing.T) {
	english := ForLanguage("english")
	assert.Equal(t, []string{"hello", "world"}, english.Tokenize("Hello, world!"))

	russian := ForLanguage("russian")
	assert.Equal(t, []string{"привет", "мир"}, russian.Tokenize("Привет, мир!"))

	chinese := ForLanguage("chinese_simplified")
	assert.Equal(t, []string{"你", "好"}, chinese.Tokenize("你好"))
}
