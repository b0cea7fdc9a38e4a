package main

import (
	"github.com/diogo/tripchat/internal/commands"
)

func main() {
	commands.Execute()
}
