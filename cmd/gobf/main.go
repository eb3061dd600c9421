package main

import (
	"os"

	"github.com/jcorbin/gobf/cmd/gobf/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
