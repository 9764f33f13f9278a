package main

import "github.com/denverhappyhour/pipeline/internal/cli"

func main() {
	cli.Execute()
}
