package main

import "github.com/aweris/bindex/cmd/bindex/cmd"

func main() {
	cmd.Execute()
}
