package main

import "github.com/basepos/vaultctl/cmd"

func main() {
	cmd.Execute()
}
