package main

import "github.com/pders01/modpack/cmd"

func main() {
	cmd.Execute()
}
