package main

import "github.com/passfile/passfile-go/cmd/passfile/cmd"

func main() {
	cmd.Execute()
}
