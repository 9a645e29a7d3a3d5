// Command sieve evaluates, queries and compresses periodic integer sieves.
//
// Usage:
//
//	sieve parse "5@4|6@1|(3@2&13@7)"
//	sieve parse "3@2|5@3" --min 0 --max 30
//	sieve compress 2,3,5,8,11,13,14
//	sieve binary 001101001001011
//	sieve batch formulas.txt --concurrency 8 --output json
//
// Global flags:
//
//	--config path.yaml      load defaults from a YAML file
//	--output text|json      output format
//	--log-level LEVEL       debug, info, warn or error (logs go to stderr)
//	--max-modulus N         cap the compressor's trial moduli (0 = window width)
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

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "sieve:", err)
		stop()
		os.Exit(1)
	}
}
