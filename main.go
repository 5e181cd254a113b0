package main

import "paycheck-agent/cli"

func main() {
	cli.Execute()
}
