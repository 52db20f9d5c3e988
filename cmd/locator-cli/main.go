package main

import "locator/cmd/locator-cli/cmd"

func main() {
	cmd.Execute()
}
