package main

import "player-auction/internal/cli"

func main() {
	cli.Execute()
}
