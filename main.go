package main

import "finboard/cmd"

func main() {
	cmd.Execute()
}
