package main

import (
	"os"

	"github.com/gopak/minigrep/cmd"
)

var version = "dev"

func main() {
	_, insensitive := os.LookupEnv("CASE_INSENSITIVE")
	cmd.SetVersion(version)
	if err := cmd.Execute(!insensitive); err != nil {
		os.Exit(1)
	}
}
