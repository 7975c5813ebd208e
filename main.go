package main

import "tripbuilder/internal/cli"

func main() {
	cli.Execute()
}
