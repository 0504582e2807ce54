package anim

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// StopOnSignal sets flag when one of sigs arrives (SIGINT and SIGTERM by
// default). The handler only flips the flag; the loop notices it at the
// next frame boundary and runs the normal release path.
// The returned function unregisters the handler.
func StopOnSignal(flag *atomic.Bool, sigs ...os.Signal) (stop func()) {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	done := make(chan struct{})

	go func() {
		select {
		case <-ch:
			flag.Store(true)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}
