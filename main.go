package main

import (
	"github.com/jurhoades/PoSub/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
