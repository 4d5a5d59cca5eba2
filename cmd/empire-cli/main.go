package main

import "github.com/nfrund/empireos/cmd/empire-cli/cmd"

func main() {
	cmd.Execute()
}
