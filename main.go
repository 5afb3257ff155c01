package main

import "github.com/pooofdevelopment/go-hl-client/cmd"

func main() {
	cmd.Execute()
}
