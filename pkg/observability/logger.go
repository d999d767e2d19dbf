// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides logging and metrics.
package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger interface used across the skill
// server. It is deliberately narrow — callers never see the underlying
// zap.Logger directly, so the backing library can be swapped without
// touching call sites.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// logger wraps a *zap.Logger.
type logger struct {
	z *zap.Logger
}

// NewLogger creates a new Logger at the given level ("debug", "info",
// "warn", "error"). Production encoding (JSON, ISO8601 timestamps)
// matches what a supervisor's log aggregator expects.
func NewLogger(level string) Logger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build()
	if err != nil {
		z = zap.NewNop()
	}
	return &logger{z: z}
}

func toZapFields(fields []Field) []zap.Field {
	zf := make([]zap.Field, len(fields))
	for i, f := range fields {
		zf[i] = zap.Any(f.Key, f.Value)
	}
	return zf
}

func (l *logger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *logger) Info(msg string, fields ...Field)   { l.z.Info(msg, toZapFields(fields)...) }
func (l *logger) Warn(msg string, fields ...Field)   { l.z.Warn(msg, toZapFields(fields)...) }
func (l *logger) Error(msg string, fields ...Field)  { l.z.Error(msg, toZapFields(fields)...) }

func (l *logger) With(fields ...Field) Logger {
	return &logger{z: l.z.With(toZapFields(fields)...)}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// NopLogger returns a Logger that discards everything, for tests.
func NopLogger() Logger {
	return &logger{z: zap.NewNop()}
}
