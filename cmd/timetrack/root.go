package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Aadithya-J/time_management/internal/client"
	"github.com/Aadithya-J/time_management/internal/tui"
)

const defaultAPI = "http://localhost:3000"

func apiFromEnv() string {
	if v := os.Getenv("TIMETRACK_API"); v != "" {
		return v
	}
	return defaultAPI
}

func newRootCmd() *cobra.Command {
	var apiURL string

	runE := func(cmd *cobra.Command, args []string) error {
		return runTUI(apiURL)
	}

	root := &cobra.Command{
		Use:          "timetrack",
		Short:        "Terminal client for the time management API",
		Long:         `timetrack starts, stops and saves time entries against a running time management API.`,
		SilenceUsage: true,
		RunE:         runE,
	}
	root.PersistentFlags().StringVar(&apiURL, "api", apiFromEnv(), "API base URL (env TIMETRACK_API)")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the interactive timer",
			RunE:  runE,
		},
		listCmd(&apiURL),
		showCmd(&apiURL),
		deleteCmd(&apiURL),
		configCmd(&apiURL),
	)
	return root
}

func runTUI(apiURL string) error {
	p := tea.NewProgram(tui.New(client.New(apiURL), time.Now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func listCmd(apiURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved time entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")

			entries, err := client.New(*apiURL).List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPROJECT\tNAME\tSTART\tDURATION")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dm\n", e.ID, e.Project, e.Name, e.StartTime, e.Duration)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func deleteCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a time entry by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := client.New(*apiURL).Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func showCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one time entry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := client.New(*apiURL).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entry)
		},
	}
}

// configCmd prints the endpoint and stage the API reports for itself.
func configCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the API's advertised endpoint and stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := client.New(*apiURL).Config(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "endpoint: %s\nstage:    %s\n", cfg.APIEndpoint, cfg.Stage)
			return nil
		},
	}
}
