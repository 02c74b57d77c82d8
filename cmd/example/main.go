// Package main runs a usage example of the timing operations: time a bulk
// load, track an order submission explicitly, and cancel a noisy probe.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	meltimers "github.com/natehaby/mel-timers"
)

func main() {
	logger := meltimers.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	// Fire-and-forget: completes on scope exit.
	loadCatalog(logger)

	// Explicit tracking: abandoned on scope exit unless completed.
	for _, id := range []int{1001, 1002, 1003} {
		if err := submitOrder(logger, id); err != nil {
			fmt.Fprintln(os.Stderr, "submit:", err)
		}
	}

	// Slow operations escalate to warning.
	slow := meltimers.Configure(meltimers.WithWarningThreshold(10 * time.Millisecond))
	op := slow.TimeOperation(logger, "Compacting segment {Segment}", 7)
	time.Sleep(25 * time.Millisecond)
	op.Done()

	// Cancelled operations log nothing.
	probe := meltimers.TimeOperation(logger, "Probing {Host}", "db-replica")
	probe.Cancel()
	probe.Done()
}

func loadCatalog(logger meltimers.Logger) {
	defer meltimers.TimeOperation(logger, "Loading catalog with {Count} products", 5000).Done()
	time.Sleep(20 * time.Millisecond)
}

func submitOrder(logger meltimers.Logger, orderID int) error {
	op := meltimers.BeginOperation(logger, "Submitting order {OrderId}", orderID)
	defer op.Done()

	time.Sleep(time.Duration(rand.Intn(10)) * time.Millisecond)
	if orderID%2 == 0 {
		err := errors.New("payment declined")
		op.SetError(err)
		return err // abandoned on scope exit, with the error attached
	}

	op.CompleteWith("Rows", 1)
	return nil
}
