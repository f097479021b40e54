package main

import "github.com/miwee/exfun/cmd/exfun/cmd"

func main() {
	cmd.Execute()
}
