package main

import (
	"github.com/carelink-org/rpm/api"
)

func main() {
	api.MainLoop()
}
