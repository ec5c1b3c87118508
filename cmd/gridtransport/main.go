// Command-line interface to the occupancy-grid transport server.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/roboviz/gridtransport/gridtransport"
	"github.com/roboviz/gridtransport/server"
)

// Version is the release tag, set at build time.
var Version = "dev"

var (
	// Display usage if true.
	showHelp = flag.Bool("help", false, "")

	// Run in verbose mode if true.
	runVerbose = flag.Bool("verbose", false, "")

	// Path to a TOML configuration file.
	configFile = flag.String("config", "", "")
)

const helpMessage = `
gridtransport scales occupancy-grid maps and compresses them for visualization

Usage: gridtransport [options] <command>

      -config     =string   Path to TOML configuration file.
      -verbose    (flag)    Run in verbose mode.
  -h, -help       (flag)    Show help message

Commands:

	about
	help
	serve
`

var usage = func() {
	fmt.Print(helpMessage)
}

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	if *runVerbose {
		gridtransport.Verbose = true
		gridtransport.SetLogMode(gridtransport.DebugMode)
	} else {
		gridtransport.SetLogMode(gridtransport.InfoMode)
	}
	if *showHelp || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	command := flag.Arg(0)
	switch command {
	case "help":
		flag.Usage()
	case "about":
		fmt.Printf("gridtransport %s\n", Version)
	case "serve":
		if err := server.LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to load config: %v\n", err)
			os.Exit(1)
		}
		if err := server.Serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", command)
		flag.Usage()
		os.Exit(1)
	}
}
