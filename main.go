package main

import "edastat/cmd"

func main() {
	cmd.Execute()
}
