package main

import "jump61/cli"

func main() {
	cli.Execute()
}
