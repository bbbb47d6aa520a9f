package main

import "github.com/iw2rmb/strata/cmd/strata/cmd"

func main() {
	cmd.Execute()
}
