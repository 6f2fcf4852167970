//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package log_test

import (
	"testing"

	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// TestLog verifies that the package helpers delegate to the Default logger.
func TestLog(t *testing.T) {
	original := log.Default
	defer func() { log.Default = original }()

	logger := &countLogger{}
	log.Default = logger

	log.Debug("test")
	log.Debugf("test %d", 1)
	log.Info("test")
	log.Infof("test %d", 1)
	log.Warn("test")
	log.Warnf("test %d", 1)
	log.Error("test")
	log.Errorf("test %d", 1)

	if logger.calls != 8 {
		t.Fatalf("expected 8 calls, got %d", logger.calls)
	}
}

type countLogger struct {
	calls int
}

func (l *countLogger) Debug(args ...any)                 { l.calls++ }
func (l *countLogger) Debugf(format string, args ...any) { l.calls++ }
func (l *countLogger) Info(args ...any)                  { l.calls++ }
func (l *countLogger) Infof(format string, args ...any)  { l.calls++ }
func (l *countLogger) Warn(args ...any)                  { l.calls++ }
func (l *countLogger) Warnf(format string, args ...any)  { l.calls++ }
func (l *countLogger) Error(args ...any)                 { l.calls++ }
func (l *countLogger) Errorf(format string, args ...any) { l.calls++ }
func (l *countLogger) Fatal(args ...any)                 { l.calls++ }
func (l *countLogger) Fatalf(format string, args ...any) { l.calls++ }
