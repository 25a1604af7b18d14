package main

import "github.com/dverduzco/ecompop/cmd"

func main() {
	cmd.Execute()
}
