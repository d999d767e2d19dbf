// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package lifecycle provides process-lifetime context helpers for the
// skill server's entry points.
package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// signalContext cancels on an OS signal, on its own cancel func, or when
// its parent is cancelled.
type signalContext struct {
	context.Context

	cancel   context.CancelFunc
	stopOnce sync.Once
	stopCh   chan struct{}
}

func (sc *signalContext) Done() <-chan struct{} {
	return sc.Context.Done()
}

func (sc *signalContext) stop() {
	sc.stopOnce.Do(func() {
		sc.cancel()
		close(sc.stopCh)
	})
}

// WithSignal returns a context that cancels when any of sigs arrives.
// The returned cancel func must be called to stop the signal watcher
// goroutine even if no signal ever arrives.
func WithSignal(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sc := &signalContext{
		Context: ctx,
		cancel:  cancel,
		stopCh:  make(chan struct{}),
	}

	ch := make(chan os.Signal, len(sigs))
	signal.Notify(ch, sigs...)

	go func() {
		select {
		case <-ch:
			cancel()
		case <-sc.stopCh:
		case <-ctx.Done():
		}
	}()

	return sc, sc.stop
}
