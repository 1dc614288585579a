package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/skylens/tailtrace/cmd"
)

func main() {
	// Optional .env next to the binary; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	shouldRunServer := flag.Bool("server", false, "Run the HTTP server")
	researchTarget := flag.String("research", "", "Research a single n-number (e.g. N540JT)")
	batchFile := flag.String("batch", "", "Research every n-number listed in a file, one per line")
	outputPath := flag.String("output", "", "Write full JSON results to this file (research/batch modes)")
	flag.Parse()

	var err error
	switch {
	case *shouldRunServer:
		err = cmd.RunServer()
	case *researchTarget != "":
		err = cmd.RunResearch(*researchTarget, *outputPath)
	case *batchFile != "":
		err = cmd.RunBatch(*batchFile, *outputPath)
	default:
		fmt.Fprintln(os.Stderr, "usage: tailtrace -server | -research N540JT | -batch list.txt [-output out.json]")
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}
