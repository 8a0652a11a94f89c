package main

import "github.com/isaacphi/gptsmith/internal/ui/cli"

func main() {
	cli.Execute()
}
