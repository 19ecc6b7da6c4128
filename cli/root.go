package main

import (
	"bytes"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	probe "github.com/sliverarmory/reflektor-probe"
	"github.com/sliverarmory/reflektor-probe/loader"
)

var (
	callExport string
	jsonReport bool
)

var rootCmd = &cobra.Command{
	Use:          "reflektor-probe",
	Short:        "Write, verify, and exercise the reflektor loader marker",
	SilenceUsage: true,
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Run the probe in-process and print the marker path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := probe.ResolvePath()
		probe.WriteMarker(path)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Run the status entry point in-process and print its return code",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), probe.StartStatus())
		return nil
	},
}

type verifyReport struct {
	Path    string `json:"path"`
	Present bool   `json:"present"`
	Valid   bool   `json:"valid"`
	Size    int    `json:"size"`
}

var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Check that the marker file holds exactly the probe payload",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := probe.ResolvePath()
		if len(args) == 1 && args[0] != "" {
			path = args[0]
		}

		report := verifyReport{Path: path}
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			report.Present = true
			report.Size = len(data)
			report.Valid = bytes.Equal(data, []byte(probe.Payload))
		case os.IsNotExist(err):
		default:
			return fmt.Errorf("read marker %s: %w", path, err)
		}

		if jsonReport {
			encoded, err := json.Marshal(report)
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		}

		if !report.Present {
			return fmt.Errorf("no marker at %s", path)
		}
		if !report.Valid {
			return fmt.Errorf("unexpected marker content at %s: got %q, want %q", path, data, probe.Payload)
		}
		if !jsonReport {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
		}
		return nil
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise <shared library>",
	Short: "Load a built probe module, call an export, and verify the marker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := loader.OpenLibrary(args[0])
		if err != nil {
			return err
		}
		// Leak the handle on purpose: unmapping a Go c-shared module while
		// its runtime is live can crash the process.

		if err := library.CallExport(callExport); err != nil {
			return err
		}

		path := probe.ResolvePath()
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read marker %s: %w", path, err)
		}
		if !bytes.Equal(data, []byte(probe.Payload)) {
			return fmt.Errorf("unexpected marker content at %s: got %q, want %q", path, data, probe.Payload)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	exerciseCmd.Flags().StringVar(&callExport, "call-export", "StartW", "Entry symbol to resolve in the shared library")
	verifyCmd.Flags().BoolVar(&jsonReport, "json", false, "Emit the verification report as JSON")
	rootCmd.AddCommand(writeCmd, statusCmd, verifyCmd, exerciseCmd)
}
