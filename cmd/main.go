package main

import (
	"log"

	"github.com/lablabs/storefront-client/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}
