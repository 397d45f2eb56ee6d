// cmd/bg-docs/main.go
package main

import (
	"context"
	"os"

	"biogenesis/internal/docsapp"
)

func main() {
	os.Exit(docsapp.RunContext(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
