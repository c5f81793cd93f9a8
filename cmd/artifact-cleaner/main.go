package main

import "artifact-cleaner/internal/cli"

func main() {
	cli.Execute()
}
