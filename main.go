package main

import "item-bias/cmd"

func main() {
	cmd.Execute()
}
