package main

import "github.com/rickcrawford/tokenwc/cmd"

func main() {
	cmd.Execute()
}
