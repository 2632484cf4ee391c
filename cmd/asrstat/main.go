// cmd/asrstat/main.go
package main

import (
	"asrstat/internal/app"
	"asrstat/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
