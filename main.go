package main

import (
	"github.com/svenoorjosan/scholar/shell"
)

func main() {
	var console = shell.NewConsole(2)
	console.Run()
}
