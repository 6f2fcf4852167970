//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFMeasure verifies the harmonic mean and its zero-sum rule.
func TestFMeasure(t *testing.T) {
	assert.InDelta(t, 0.0, FMeasure(0, 0), 1e-12)
	assert.InDelta(t, 0.5, FMeasure(0.5, 0.5), 1e-12)
	assert.InDelta(t, 0.75, FMeasure(0.75, 0.75), 1e-12)
	assert.InDelta(t, 2.0/3.0, FMeasure(1.0, 0.5), 1e-12)
	assert.InDelta(t, 2.0/3.0, FMeasure(0.5, 1.0), 1e-12)
	assert.InDelta(t, 0.0, FMeasure(0, 1), 1e-12)
}

// TestNew verifies that New derives the F-measure from precision and recall.
func TestNew(t *testing.T) {
	s := New(1.0, 1.0/3.0)
	assert.InDelta(t, 1.0, s.Precision, 1e-12)
	assert.InDelta(t, 1.0/3.0, s.Recall, 1e-12)
	assert.InDelta(t, 0.5, s.FMeasure, 1e-12)

	zero := New(0, 0)
	assert.Equal(t, Score{}, zero)
}
