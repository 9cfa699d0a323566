// Command panel-check exercises a live panel's Application API endpoints and
// reports which ones respond as expected. Useful for verifying an API key's
// permissions and a panel's version compatibility.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	pterodactyl "github.com/pterosdk/go-pterodactyl"
	"github.com/pterosdk/go-pterodactyl/api/application"
)

var (
	baseURL  = flag.String("url", os.Getenv("PTERODACTYL_URL"), "Panel base URL (or use PTERODACTYL_URL env)")
	apiKey   = flag.String("api-key", os.Getenv("PTERODACTYL_API_KEY"), "Application API key (or use PTERODACTYL_API_KEY env)")
	insecure = flag.Bool("insecure", false, "Skip TLS certificate verification (self-signed panels)")
)

type checkResult struct {
	endpoint string
	count    int
	duration time.Duration
	err      error
}

func main() {
	flag.Parse()

	if *baseURL == "" || *apiKey == "" {
		log.Fatal("Panel URL and API key are required. Use -url/-api-key flags or PTERODACTYL_URL/PTERODACTYL_API_KEY environment variables")
	}

	panel, err := pterodactyl.New(pterodactyl.Config{
		BaseURL:            *baseURL,
		APIKey:             *apiKey,
		InsecureSkipVerify: *insecure,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Printf("Checking %s\n", *baseURL)
	fmt.Println(strings.Repeat("=", 60))

	opts := &application.ListOptions{PerPage: 1}
	results := []checkResult{
		run("locations", func() (int, error) {
			_, page, err := panel.Locations().List(ctx, opts)
			return total(page), err
		}),
		run("nodes", func() (int, error) {
			_, page, err := panel.Nodes().List(ctx, opts)
			return total(page), err
		}),
		run("nests", func() (int, error) {
			_, page, err := panel.Nests().List(ctx, opts)
			return total(page), err
		}),
		run("servers", func() (int, error) {
			_, page, err := panel.Servers().List(ctx, opts)
			return total(page), err
		}),
		run("users", func() (int, error) {
			_, page, err := panel.Users().List(ctx, opts)
			return total(page), err
		}),
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Printf("FAIL %-10s %v\n", r.endpoint, describe(r.err))
			continue
		}
		fmt.Printf("ok   %-10s %d total (%v)\n", r.endpoint, r.count, r.duration.Round(time.Millisecond))
	}

	fmt.Println(strings.Repeat("=", 60))
	if failed > 0 {
		fmt.Printf("%d of %d endpoints failed\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Printf("All %d endpoints reachable\n", len(results))
}

func run(endpoint string, fn func() (int, error)) checkResult {
	start := time.Now()
	count, err := fn()
	return checkResult{
		endpoint: endpoint,
		count:    count,
		duration: time.Since(start),
		err:      err,
	}
}

func total(page *application.Pagination) int {
	if page == nil {
		return 0
	}
	return page.Total
}

// describe folds panel error payloads into a single line.
func describe(err error) string {
	var apiErr *pterodactyl.APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Errors) > 0 {
			return fmt.Sprintf("HTTP %d: %s", apiErr.StatusCode, apiErr.Errors[0].Detail)
		}
		return fmt.Sprintf("HTTP %d", apiErr.StatusCode)
	}
	return err.Error()
}
