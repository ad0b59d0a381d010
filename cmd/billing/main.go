package main

import (
	"github.com/carelink-org/rpm/cmd/billing/command"
)

func main() {
	command.Execute()
}
