// File: api/runnable.go
// Package api defines the Runnable contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "context"

// Runnable is the body executed on a native thread. Implementations supply
// the work; the thread package supplies the OS thread it runs on.
//
// Run must observe ctx: cancellation of a thread is cooperative, and ctx is
// cancelled when the owning thread is stopped. Run returning ends the thread.
type Runnable interface {
	Run(ctx context.Context)
}

// RunnableFunc adapts a plain function to the Runnable interface.
type RunnableFunc func(ctx context.Context)

// Run implements Runnable.
func (f RunnableFunc) Run(ctx context.Context) { f(ctx) }
