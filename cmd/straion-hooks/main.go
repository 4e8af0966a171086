package main

import "github.com/straion/straion-claude-plugin/internal/cli"

func main() {
	cli.Execute()
}
