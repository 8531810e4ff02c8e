package main

import "github.com/cch137/gokv/cmd"

func main() {
	cmd.Execute()
}
