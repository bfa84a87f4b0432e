package main

import (
	"github.com/MagicAardvark/race-results-sub000/cmd"
)

func main() {
	cmd.Execute()
}
