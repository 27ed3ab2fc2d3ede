// cmd/hexamer/main.go
package main

import (
	"hexamer/internal/app"
	"hexamer/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
