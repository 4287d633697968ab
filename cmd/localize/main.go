package main

import "github.com/oshokin/localize/cmd/localize/cmd"

func main() {
	cmd.Execute()
}
