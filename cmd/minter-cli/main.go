package main

import "github.com/pandodao/spl-minter/cmd/minter-cli/cmd"

func main() {
	cmd.Execute()
}
