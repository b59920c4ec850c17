package main

import "tickbridge/cmd/tickbridge-cli/cmd"

func main() {
	cmd.Execute()
}
