package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dfreire/menukit/pkg/search"
)

func printJSON(response interface{}) {
	printJSONToWriter(os.Stdout, response)
}

func printJSONToWriter(w io.Writer, response interface{}) {
	prettyJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Fatalf("cannot format JSON: %v", err)
	}
	fmt.Fprintf(w, "%s\n", prettyJSON)
}

func printSearchResults(w io.Writer, results []search.Result, format string) {
	if format == "json" {
		printJSONToWriter(w, results)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No matches found")
		return
	}
	for _, result := range results {
		fmt.Fprintln(w, result.String())
	}
}
