package main

import "projdex/cmd/projdex/cmd"

func main() {
	cmd.Execute()
}
