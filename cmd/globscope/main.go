package main

import "github.com/globscope/globscope/cmd"

func main() {
	cmd.Execute()
}
