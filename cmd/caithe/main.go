package main

import "github.com/KleaSCM/caithe/cmd/caithe/commands"

func main() {
	commands.Execute()
}
