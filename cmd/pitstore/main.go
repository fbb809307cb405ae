// Command pitstore is the shop front for the F1 merchandise store.
//
//	pitstore products --category jerseys --sort price-low
//	pitstore cart add 1 --size M --color Red --qty 2
//	pitstore signup --name "Lando Norris" --email lando@example.com --password papaya4
//	pitstore checkout --method cod
//	pitstore orders
//
// State lives in the snapshot store selected by STORE_DRIVER (a directory of
// JSON files by default), so each invocation picks up where the last one
// left off.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, closeStore := newRootCmd()
	err := root.ExecuteContext(ctx)
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ ", describe(err))
		stop()
		os.Exit(1)
	}
}
