package main

import "github.com/prodflow/shopfloor-routing/internal/cli"

func main() {
	cli.Execute()
}
