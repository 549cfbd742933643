package main

import "github.com/chrisdamba/marketsim/cmd"

func main() {
	cmd.Execute()
}
