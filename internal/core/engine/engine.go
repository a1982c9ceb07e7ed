// Package engine implements the I/O loop (component G): a single
// goroutine that repeatedly polls the capture source for one frame,
// hands it to the dispatcher, and gives the beacon scheduler a chance to
// fire, until the context is cancelled.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jfdrake/fakeap/internal/core/beacon"
	"github.com/jfdrake/fakeap/internal/core/dispatch"
	"github.com/jfdrake/fakeap/internal/core/domain"
	"github.com/jfdrake/fakeap/internal/core/ports"
)

// Engine runs the cooperative capture/dispatch/beacon loop. It holds no
// goroutines of its own and does not synchronize anything internally --
// Run must not be called concurrently with itself.
type Engine struct {
	capture    ports.CaptureSource
	dispatcher *dispatch.Dispatcher
	beacon     *beacon.Scheduler
	log        *slog.Logger
}

// New wires a capture source, dispatcher and beacon scheduler into a
// runnable engine.
func New(capture ports.CaptureSource, dispatcher *dispatch.Dispatcher, sched *beacon.Scheduler, log *slog.Logger) *Engine {
	return &Engine{capture: capture, dispatcher: dispatcher, beacon: sched, log: log}
}

// Run executes the poll/dispatch/beacon loop until ctx is cancelled. It
// returns nil on a clean shutdown (context cancellation) and a non-nil
// error if the capture source or dispatcher fails in a way the loop
// cannot recover from.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			e.log.Info("engine shutting down")
			return nil
		}

		pollCtx, cancel := context.WithTimeout(ctx, domain.PollTimeout)
		wireLen, capLen, data, err := e.capture.ReadPacketData(pollCtx)
		cancel()

		switch {
		case err == nil:
			now := time.Now()
			if dispatchErr := e.dispatcher.Dispatch(now, wireLen, capLen, data); dispatchErr != nil {
				e.log.Error("dispatch failed", "error", dispatchErr)
				return dispatchErr
			}
		case errors.Is(err, ports.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
			// No frame this poll; fall through to the beacon check.
		case errors.Is(err, context.Canceled):
			e.log.Info("engine shutting down")
			return nil
		default:
			e.log.Error("capture failed", "error", err)
			return err
		}

		e.beacon.Tick(time.Now())
	}
}
