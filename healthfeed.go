package main

import (
	"github.com/plemya-health/healthfeed/api"
)

func main() {
	api.MainLoop()
}
