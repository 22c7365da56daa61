package main

import "github.com/versescope/versescope/cmd"

func main() {
	cmd.Execute()
}
