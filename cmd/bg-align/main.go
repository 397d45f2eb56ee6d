// cmd/bg-align/main.go
package main

import (
	"biogenesis/internal/alignapp"
	"biogenesis/internal/appshell"
)

func main() { appshell.Main(alignapp.RunContext) }
