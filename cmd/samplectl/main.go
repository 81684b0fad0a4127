package main

import (
	"github.com/carson-networks/audit-sampler/internal/cli"
)

func main() {
	cli.Execute()
}
