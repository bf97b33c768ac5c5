package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
