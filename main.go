package main

import "github.com/mgtools/gomg/cmd"

func main() {
	cmd.Execute()
}
