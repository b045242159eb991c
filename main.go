package main

import "github.com/kamal-hamza/uigen/cmd"

func main() {
	cmd.Execute()
}
