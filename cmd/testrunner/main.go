package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/adventure/test"
)

func main() {
	serverAddr := flag.String("addr", "localhost:4000", "Adventure server address")
	verbose := flag.Bool("v", false, "Verbose output - show detailed actions for each test")
	filter := flag.String("run", "", "Only run tests whose name contains this text")
	list := flag.Bool("list", false, "List test names and exit")
	flag.Parse()

	if *list {
		for _, name := range test.GetTestNames() {
			fmt.Println(name)
		}
		return
	}

	test.Verbose = *verbose

	fmt.Printf("Running integration tests against %s\n", *serverAddr)
	fmt.Println("Make sure the server is running the Small world (adventure -serve -world Small)!")
	if *verbose {
		fmt.Println("Verbose mode enabled - showing detailed test actions")
	}
	fmt.Println()

	results := test.RunFilteredTests(*serverAddr, *filter)
	test.PrintResults(results)

	for _, result := range results {
		if !result.Passed {
			os.Exit(1)
		}
	}
}
