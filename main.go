package main

import "interface-reconciler/cmd"

func main() {
	cmd.Execute()
}
