package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shredfile/internal/shred"
)

const (
	Version = "1.0.2"
	AppName = "shredfile"

	// Exit codes
	EXIT_SUCCESS = 0
	EXIT_ERROR   = 1
	EXIT_WARNING = 2
)

var (
	dryRun     bool
	verbose    bool
	configPath string
	profile    string

	flagPasses int
	flagScheme string
	force      bool
	keepName   bool
	reportDir  string
)

var rootCmd = &cobra.Command{
	Use:     "shredfile",
	Short:   "shredfile - secure file shredding utility",
	Long:    "Utility for secure file destruction: multi-pass overwrite with configurable patterns, synchronous flush per pass, and removal of the directory entry",
	Version: Version,
}

var shredCmd = &cobra.Command{
	Use:   "shred [files...]",
	Short: "Securely overwrite and delete files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShred,
}

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List available pass-pattern schemes",
	Run:   runSchemes,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Log what would be shredded without writing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "Shred profile (quick/standard/dod/paranoid)")

	shredCmd.Flags().IntVarP(&flagPasses, "passes", "p", 0, "Number of overwrite passes")
	shredCmd.Flags().StringVarP(&flagScheme, "scheme", "s", "", "Pass-pattern scheme (see 'schemes')")
	shredCmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	shredCmd.Flags().BoolVar(&keepName, "keep-name", false, "Unlink under the original name without rename obfuscation")
	shredCmd.Flags().StringVar(&reportDir, "report", "", "Directory to write the JSON run report to")

	rootCmd.AddCommand(shredCmd, schemesCmd)
}

func runSchemes(cmd *cobra.Command, args []string) {
	fmt.Println("Available schemes:")
	for _, s := range shred.Schemes() {
		names := make([]string, len(s.Passes))
		for i, p := range s.Passes {
			names[i] = p.String()
		}
		fmt.Printf("  %-10s %s (last repeats as final pass)\n", s.Name, strings.Join(names, ", "))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(EXIT_ERROR)
	}
}
