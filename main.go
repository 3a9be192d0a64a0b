package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/edgee-cloud/didomi-component/commands"
)

// Rev holds binary revision string
// Set manually at build time using:
//
//	go build -ldflags "-X main.Rev=`git rev-parse --short HEAD`"
var Rev string

func main() {
	defer glog.Flush()

	root := commands.NewRootCmd(Rev, flag.CommandLine)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
