package main

import "github.com/zjrosen/spark/cmd"

// Version is set at build time.
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	cmd.Execute()
}
