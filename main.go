package main

import "github.com/productdevbook/fdinspect/cli/cmd"

func main() {
	cmd.Execute()
}
