package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/landing/internal/contract"
)

var errChecksFailed = errors.New("one or more pages are missing required markup")

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		asJSON  bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "site-check [file|glob|url]...",
		Short: "Check landing page markup for the elements the browser bundle binds to",
		Long: `site-check parses each page and reports which interactive features it can
support. Files may be given as ** globs. http(s) URLs are fetched.
The exit status is 1 when any page lacks a required element.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return run(ctx, out, args, asJSON, &http.Client{Timeout: timeout})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print reports as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout including URL fetches")
	return cmd
}

func run(ctx context.Context, out io.Writer, args []string, asJSON bool, client *http.Client) error {
	sources, err := contract.Expand(args)
	if err != nil {
		return err
	}

	reports := make([]contract.Report, 0, len(sources))
	for _, source := range sources {
		report, err := contract.Load(ctx, client, source)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			printReport(out, report)
		}
	}

	for _, report := range reports {
		if !report.OK() {
			return errChecksFailed
		}
	}
	return nil
}

func printReport(out io.Writer, report contract.Report) {
	status := "ok"
	if !report.OK() {
		status = "FAIL"
	}
	fmt.Fprintf(out, "%-4s %s\n", status, report.Source)
	for _, res := range report.Results {
		switch {
		case !res.OK:
			fmt.Fprintf(out, "  missing  %s (%s)\n", res.Name, res.Selector)
		case res.Count == 0:
			fmt.Fprintf(out, "  absent   %s (%s)\n", res.Name, res.Selector)
		default:
			fmt.Fprintf(out, "  found    %s (%s) x%d\n", res.Name, res.Selector, res.Count)
		}
	}
}
