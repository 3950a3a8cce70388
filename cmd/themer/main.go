package main

import "github.com/opencode-ai/themer/internal/cli"

func main() {
	cli.Execute()
}
