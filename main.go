package main

import "rangeconv/internal/cli"

func main() {
	cli.Execute()
}
