package main

import "github.com/mediareap/mediareap/cmd"

func main() {
	cmd.Execute()
}
