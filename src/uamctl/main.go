package main

import "github.com/bitswalk/uam/src/uamctl/internal/cmd"

func main() {
	cmd.Execute()
}
