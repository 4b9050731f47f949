package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"batchrename/internal/config"
	"batchrename/internal/fileset"
	"batchrename/internal/log"
	"batchrename/internal/rename"
	"batchrename/internal/split"
	"batchrename/internal/table"
	"batchrename/internal/template"
	"batchrename/internal/tui"
)

var (
	version = "dev"

	cfgFile string
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "batchrename",
		Short:   "A batch file renaming utility",
		Long:    `Batchrename renames a folder of files from spreadsheet data using a composable naming template.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				fmt.Printf("Warning: could not load config: %v. Using default settings.\n", err)
				cfg = config.New()
			}
			if err := log.Setup(cfg.Logging.Level, cfg.Logging.File); err != nil {
				fmt.Printf("Warning: could not set up logging: %v\n", err)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/batchrename/config.yaml)")

	rootCmd.AddCommand(wizardCmd())
	rootCmd.AddCommand(renameCmd())
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(splitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// wizardCmd starts the interactive four-stage wizard.
func wizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Start the interactive rename wizard",
		Long:  `Walk through folder selection, spreadsheet binding, template composition, and rename execution.`,
		Run: func(cmd *cobra.Command, args []string) {
			p := tea.NewProgram(tui.New(cfg))
			if _, err := p.Run(); err != nil {
				fmt.Printf("Error running wizard: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

// renameCmd runs the full pipeline non-interactively.
func renameCmd() *cobra.Command {
	var (
		dir        string
		tablePath  string
		sheet      string
		fields     []string
		separators []string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename files from spreadsheet data",
		Long: `Rename every file in a directory using values from a spreadsheet.
Fields are joined in the given order; separators fill the gaps between them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("dry-run") {
				cfg.Rename.DryRun = dryRun
			}

			files, ext, err := fileset.Discover(dir, cfg.Rename.AllowedExtensions, cfg.Rename.Ignore)
			if err != nil {
				return err
			}

			data, err := table.Load(tablePath, sheet)
			if err != nil {
				return err
			}

			builder := template.NewBuilder(fields, ext)
			for i, sep := range separators {
				if err := builder.SetSeparator(i, sep); err != nil {
					return err
				}
			}
			if err := builder.Validate(); err != nil {
				return err
			}
			tpl := builder.Build()

			names, err := template.Generate(data, tpl)
			if err != nil {
				return err
			}

			executor := rename.NewWithConfig(cfg)
			if cfg.Rename.DryRun {
				fmt.Printf("Dry run: planning renames in '%s'\n", dir)
			}
			results, err := executor.Rename(files, names)
			for _, res := range results {
				status := "Renamed"
				if !res.Renamed {
					status = "Skipped"
					if res.Error != nil {
						status = fmt.Sprintf("Error: %v", res.Error)
					}
				}
				fmt.Printf("  - %s -> %s (%s)\n", res.SourcePath, res.DestinationPath, status)
			}
			if err != nil {
				return err
			}

			if cfg.Rename.DryRun {
				fmt.Println("\nDry run complete. No files were renamed.")
			} else {
				fmt.Printf("\nRenamed %d files.\n", len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory containing the files to rename")
	cmd.Flags().StringVarP(&tablePath, "table", "t", "", "Spreadsheet with one row per file (.xlsx or .csv)")
	cmd.Flags().StringVarP(&sheet, "sheet", "s", "", "Worksheet name (defaults to the first sheet)")
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "Column names in naming order")
	cmd.Flags().StringSliceVar(&separators, "separators", nil, "Separator texts between consecutive fields")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be renamed without touching the disk")
	_ = cmd.MarkFlagRequired("dir")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("fields")

	return cmd
}

// scanCmd validates a directory and lists the homogeneous file set.
func scanCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Validate a directory for renaming",
		Long:  `Check that a directory holds a homogeneous, renameable file set and list the files in rename order.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := dir
			if target == "" && len(args) > 0 {
				target = args[0]
			}
			if target == "" {
				var err error
				target, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("error getting current directory: %w", err)
				}
			}

			files, ext, err := fileset.Discover(target, cfg.Rename.AllowedExtensions, cfg.Rename.Ignore)
			if err != nil {
				return err
			}

			fmt.Printf("== Scan for %s ==\n\n", target)
			fmt.Printf("Extension: %s\n", ext)
			fmt.Printf("Files: %d\n\n", len(files))
			for _, f := range files {
				fmt.Printf("  %s\n", f.Name())
			}
			if !fileset.Writable(target) {
				fmt.Println("\nWarning: directory is not writable; renames would fail.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to scan (default is current directory)")

	return cmd
}

// splitCmd slices a single document into fixed-size page chunks.
func splitCmd() *cobra.Command {
	var (
		pages  int
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split a document into page chunks",
		Long:  `Split a document into sequential chunks of a fixed page count, written as split_1, split_2, and so on.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			if !strings.EqualFold(filepath.Ext(inPath), cfg.Split.EligibleExtension) {
				return fmt.Errorf("only %s documents can be split", cfg.Split.EligibleExtension)
			}
			if pages < 1 {
				pages = cfg.Split.PagesPerChunk
			}
			if outDir == "" {
				outDir = cfg.Split.OutputDir
			}

			if err := split.Split(inPath, outDir, pages); err != nil {
				return err
			}
			fmt.Printf("Split %s into %s/\n", inPath, outDir)
			return nil
		},
	}

	cmd.Flags().IntVarP(&pages, "pages", "p", 0, "Pages per chunk (defaults to the configured value)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to the configured subdirectory)")

	return cmd
}
