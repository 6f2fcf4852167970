//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package score defines the ROUGE score value type shared by all scorers.
package score

// Score holds ROUGE precision, recall and F-measure for one variant.
type Score struct {
	// Precision is the fraction of predicted units that match the reference in range [0, 1].
	Precision float64
	// Recall is the fraction of reference units that are matched by the prediction in range [0, 1].
	Recall float64
	// FMeasure is the harmonic mean of precision and recall in range [0, 1].
	FMeasure float64
}

// New builds a Score from precision and recall, deriving the F-measure.
func New(precision, recall float64) Score {
	return Score{
		Precision: precision,
		Recall:    recall,
		FMeasure:  FMeasure(precision, recall),
	}
}

// FMeasure computes the harmonic mean of precision and recall.
// It is 0 whenever precision+recall is 0.
func FMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}
