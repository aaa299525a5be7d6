package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/websearch/websearch"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the web and print the results as markdown",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}
	cmd.Flags().Int("max-results", websearch.DefaultMaxResults, "number of results (1-10)")
	addOutputFlags(cmd)
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, _, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	maxResults := cfg.MaxResults
	if cmd.Flags().Changed("max-results") {
		maxResults, _ = cmd.Flags().GetInt("max-results")
	}

	out, err := svc.Search(cmd.Context(), websearch.SearchRequest{
		Query:      strings.Join(args, " "),
		MaxResults: &maxResults,
		Options:    cfg.FormatOptions(),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a web page and print it as markdown",
		Args:  cobra.ExactArgs(1),
		RunE:  runFetch,
	}
	addOutputFlags(cmd)
	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, _, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	out, err := svc.Fetch(cmd.Context(), websearch.FetchRequest{
		URL:     args[0],
		Options: cfg.FormatOptions(),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
