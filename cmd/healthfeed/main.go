package main

import "github.com/plemya-health/healthfeed/cmd/healthfeed/command"

func main() {
	command.Execute()
}
