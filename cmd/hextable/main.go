// cmd/hextable/main.go
package main

import (
	"hexamer/internal/appshell"
	"hexamer/internal/tableapp"
)

func main() { appshell.Main(tableapp.RunContext) }
