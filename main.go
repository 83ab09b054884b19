package main

import "github.com/alexiusacademia/govdrop/cmd"

func main() {
	cmd.Execute()
}
