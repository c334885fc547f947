package main

import "github.com/bobmatnyc/memory-client-go/commands"

func main() {
	commands.Execute()
}
