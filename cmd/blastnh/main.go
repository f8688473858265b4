// cmd/blastnh/main.go
package main

import (
	"blastnh/internal/app"
	"blastnh/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
