package main

import (
	"flume/cli"
)

func main() {
	cli.Start()
}
