package main

import "github.com/theirongolddev/breakeven/cmd"

func main() {
	cmd.Execute()
}
