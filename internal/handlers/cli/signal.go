package cli

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// TrapInterrupt prints an exit notice to w and calls exit(1) as soon as
// SIGINT or SIGTERM is received. In-flight requests are abandoned. The
// returned function uninstalls the handler and is safe to call more than once.
func TrapInterrupt(w io.Writer, exit func(code int)) (stop func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-quit:
			printError(w, "\n[!] Exiting...")
			exit(1)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(quit)
			close(done)
		})
	}
}
