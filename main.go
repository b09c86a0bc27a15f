package main

import "musicgraph/cmd"

func main() {
	cmd.Execute()
}
