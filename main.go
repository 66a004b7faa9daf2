package main

import "github.com/gigsterhq/gigster/cmd"

func main() {
	cmd.Execute()
}
