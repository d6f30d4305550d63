package main

import "github.com/yanqian/ai-sitegen/internal/interface/cli"

func main() {
	cli.Execute()
}
