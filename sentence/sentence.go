//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package sentence segments summaries into sentences for rougeLsum scoring.
package sentence

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

// Splitter segments text into sentences. The ROUGE core never splits text
// itself; it consumes whatever segmentation the configured Splitter produces.
type Splitter interface {
	// Split returns the sentences of text with empty entries dropped.
	Split(text string) ([]string, error)
}

// Lines splits on newlines and drops empty lines. This is the default
// rougeLsum segmentation rule.
type Lines struct{}

// Split returns the non-empty lines of text.
func (Lines) Split(text string) ([]string, error) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

var (
	// punktOnce ensures the English Punkt model is loaded once per process.
	punktOnce sync.Once
	// punktTokenizer holds the initialized sentence tokenizer instance.
	punktTokenizer *sentences.DefaultSentenceTokenizer
	// punktErr caches any initialization error.
	punktErr error
)

// Punkt splits English text with the Punkt sentence model, approximating
// NLTK's sent_tokenize. Use it for summaries that are not newline-delimited.
type Punkt struct{}

// NewPunkt returns a Punkt splitter, loading the English training data on
// first use.
func NewPunkt() (*Punkt, error) {
	if err := loadPunkt(); err != nil {
		return nil, err
	}
	return &Punkt{}, nil
}

// Split segments text into sentences with the Punkt model.
func (*Punkt) Split(text string) ([]string, error) {
	if err := loadPunkt(); err != nil {
		return nil, err
	}
	raw := punktTokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		for _, s := range splitLeadingStandalonePeriods(strings.TrimSpace(sent.Text)) {
			if s == "" {
				continue
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// loadPunkt initializes the shared Punkt tokenizer from embedded training data.
func loadPunkt() error {
	punktOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			punktErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			punktErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		punktTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if punktErr != nil {
		return punktErr
	}
	if punktTokenizer == nil {
		return fmt.Errorf("english sentence tokenizer is nil")
	}
	return nil
}

// splitLeadingStandalonePeriods splits leading standalone periods into
// separate sentences. NLTK's PunktSentenceTokenizer treats ". ." patterns as
// standalone sentences in several edge cases.
func splitLeadingStandalonePeriods(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, 4)
	for {
		s = strings.TrimLeft(s, " \t\n\r\v\f")
		if s == "" || s[0] != '.' {
			break
		}
		if len(s) == 1 || isSpaceASCII(s[1]) {
			out = append(out, ".")
			s = strings.TrimLeft(s[1:], " \t\n\r\v\f")
			continue
		}
		break
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

// isSpaceASCII reports whether the byte is ASCII whitespace.
func isSpaceASCII(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
