// exportdemo writes a sample generated document to a local PDF so layout
// changes can be eyeballed without running the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"tailor-backend/internal/export"
)

func main() {
	outPath := flag.String("out", "./out/sample_document.pdf", "output path for the PDF")
	pageSize := flag.String("page-size", "A4", "page size: A4, Letter or Legal")
	font := flag.String("font", "Arial", "core font: Arial, Helvetica, Times or Courier")
	flag.Parse()

	opts := export.DefaultOptions()
	opts.PageSize = *pageSize
	opts.Font = *font
	opts.Title = "Sample Document"

	data, err := export.PDF(sampleDocument(), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s (%d bytes)\n", *outPath, len(data))
}

func sampleDocument() string {
	return `Jordan Avery
Senior Backend Engineer

SUMMARY
Backend engineer with eight years of experience building HTTP services in Go.

EXPERIENCE
Acme Corp, 2019-2025
- Led migration of a monolith to services handling 40k requests per minute.
- Introduced structured logging and tracing across twelve services.

SKILLS
Go, PostgreSQL, Docker, Kubernetes, gRPC

EDUCATION
BSc Computer Science`
}
