// Package goroutine launches background work that must never take the
// process down, such as event publishing and reporter notifications.
package goroutine

import (
	"fmt"
	"runtime/debug"
	"sync"

	"civicpulse/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine and logs any panic with its stack.
func SafeGo(log logger.Interface, name string, fn func()) {
	go run(log, name, fn)
}

// SafeGoWait is SafeGo tracked by wg, so shutdown can wait for in-flight work.
func SafeGoWait(wg *sync.WaitGroup, log logger.Interface, name string, fn func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		run(log, name, fn)
	}()
}

func run(log logger.Interface, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}
