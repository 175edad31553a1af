package main

import "github.com/torresjeff/sharedobject/cmd/solinfo/cmd"

func main() {
	cmd.Execute()
}
