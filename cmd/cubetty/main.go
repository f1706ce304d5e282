// Package main is the entry point for the cubetty terminal puzzle.
package main

import "github.com/Faultbox/cubik/internal/cli"

func main() {
	cli.Execute()
}
