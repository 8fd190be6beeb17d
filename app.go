package main

import "github.com/aimmit/diffset/cmd"

func main() {
	cmd.Run()
}
