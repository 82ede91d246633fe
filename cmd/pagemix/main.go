package main

import (
	"fmt"
	"os"

	"github.com/pagemix/pagemix"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "vocab":
		if err := runVocab(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("pagemix version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// runVocab validates a TOML vocabulary file and prints the resolved event
// sets, marking each vocabulary's load event.
func runVocab(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pagemix vocab <file>")
	}

	v, err := pagemix.LoadVocabulary(args[0])
	if err != nil {
		return err
	}

	printSet("page", v.Page)
	printSet("app", v.App)
	return nil
}

func printSet(label string, set pagemix.EventSet) {
	fmt.Printf("%s events:\n", label)
	for i, name := range set {
		if i == 0 {
			fmt.Printf("  %s (load event)\n", name)
			continue
		}
		fmt.Printf("  %s\n", name)
	}
}

func printUsage() {
	fmt.Println(`pagemix - mixin merge engine for UI pages

Usage:
  pagemix <command> [arguments]

Commands:
  vocab <file>   Validate a TOML event vocabulary file and print the resolved sets
  version        Print version
  help           Show this help

Examples:
  pagemix vocab events.toml   Check a host framework's vocabulary file`)
}
