package main

import (
	"github.com/anunayjoshi29/ethvault/cmd/ethvault/cmd"
)

func main() {
	cmd.Execute()
}
