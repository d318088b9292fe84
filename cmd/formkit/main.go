// Command formkit runs the AuroraAir portal and checks field values from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/auroraair/formkit/pkg/validator"
)

// Version information set at build time.
var version = "dev"

func main() {
	err := rootCmd().Execute()
	if err != nil && !validator.IsValidationError(err) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode is 0 on success, 2 when a checked value is rejected (its message
// is already printed) and 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case validator.IsValidationError(err):
		return 2
	default:
		return 1
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "formkit",
		Short:         "AuroraAir portal forms: serve the pages or check a value",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), checkCmd())
	return root
}
