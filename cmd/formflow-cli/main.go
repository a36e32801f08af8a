package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	formflow "github.com/goliatone/go-formflow"
	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/renderers/vanilla"
)

func main() {
	source := flag.String("source", "form.json", "form descriptor path or URL")
	mode := flag.String("mode", "fill", "what to do: validate, render, or fill")
	output := flag.String("output", "", "output file (stdout if empty)")
	user := flag.String("user", "", "identity appended to URL sources as ?user=<value>")
	flag.Parse()

	ctx := context.Background()

	src, err := parseSource(*source, *user)
	if err != nil {
		log.Fatalf("invalid source %q: %v", *source, err)
	}

	form, err := formflow.LoadForm(ctx, src, descriptor.LoaderOptions{
		AllowHTTPFallback: true,
		RequestTimeout:    10 * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	switch *mode {
	case "validate":
		fmt.Printf("%s: %d sections, %d fields\n", form.Title, len(form.Sections), form.FieldCount())
	case "render":
		html, err := vanilla.New().Render(ctx, form, render.Options{})
		if err != nil {
			log.Fatalf("Failed to render form: %v", err)
		}
		writeOutput(*output, html)
	case "fill":
		answers, err := formflow.Fill(ctx, form)
		if err != nil {
			log.Fatalf("Session failed: %v", err)
		}
		payload, err := json.MarshalIndent(answers, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode answers: %v", err)
		}
		writeOutput(*output, append(payload, '\n'))
	default:
		log.Fatalf("unknown mode %q (want validate, render, or fill)", *mode)
	}
}

func writeOutput(path string, data []byte) {
	if path == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Output written to %s\n", path)
}

func parseSource(raw, user string) (descriptor.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, fmt.Errorf("empty source")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		if user != "" {
			return descriptor.SourceForUser(path, "user", user)
		}
		return descriptor.SourceFromURL(path), nil
	}
	return descriptor.SourceFromFile(path), nil
}
