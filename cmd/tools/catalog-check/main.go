// catalog-check validates a product catalog file before deploy: unique
// ids, display names, known statuses.
package main

import (
	"flag"
	"fmt"
	"os"

	"interest-capture/internal/catalog"
)

func main() {
	path := flag.String("path", "configs/catalog.yaml", "path to the catalog file")
	flag.Parse()

	cat, err := catalog.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog-check: %v\n", err)
		os.Exit(1)
	}

	for _, p := range cat.Products() {
		fmt.Printf("%-20s %-10s %s\n", p.ID, p.Status, p.Name)
	}
	fmt.Printf("ok: %d products\n", cat.Len())
}
