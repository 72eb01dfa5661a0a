package main

import "cellstats/cmd"

func main() {
	cmd.Execute()
}
