// cmd/bg-tree/main.go
package main

import (
	"biogenesis/internal/appshell"
	"biogenesis/internal/treeapp"
)

func main() { appshell.Main(treeapp.RunContext) }
