package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/levels"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

// builtinPack names the built-in campaign in level commands.
const builtinPack = "builtin"

var (
	flagPackName     string
	flagExportFormat string
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage level files and stored level packs",
	Long: `Level files are YAML (.yaml, .yml) or JSON (.json). A file holds a name,
an optional cell size and a list of grids with 0/1 cells. Packs are named
lists of levels kept in the scores database.

Examples:
  breaker levels list
  breaker levels show ./levels
  breaker levels import ./levels --name mine
  breaker levels export builtin ./campaign --format json
  breaker levels delete mine`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored level packs",
	Args:  cobra.NoArgs,
	RunE:  runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <path|pack>",
	Short: "Show the levels of a file, directory or stored pack",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsShow,
}

var levelsImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Store the levels of a file or directory as a pack",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsImport,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <pack> <dir>",
	Short: "Write a stored pack, or the builtin campaign, to level files",
	Args:  cobra.ExactArgs(2),
	RunE:  runLevelsExport,
}

var levelsDeleteCmd = &cobra.Command{
	Use:   "delete <pack>",
	Short: "Delete a stored pack",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsDelete,
}

func init() {
	levelsImportCmd.Flags().StringVar(&flagPackName, "name", "", "Pack name (default: file or directory name)")
	levelsExportCmd.Flags().StringVar(&flagExportFormat, "format", "yaml", "File format: yaml or json")

	levelsCmd.AddCommand(levelsListCmd, levelsShowCmd, levelsImportCmd, levelsExportCmd, levelsDeleteCmd)
}

func runLevelsList(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	packs, err := store.LevelPacks()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-20s  %6s  %s\n", "Pack", "Levels", "Created")
	fmt.Fprintf(out, "  %-20s  %6d  %s\n", builtinPack, len(breakout.BuiltinLevels(breakoutConfig())), "-")
	for _, p := range packs {
		fmt.Fprintf(out, "  %-20s  %6d  %s\n", p.Name, p.Levels, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runLevelsShow(cmd *cobra.Command, args []string) error {
	ls, err := resolveLevels(args[0])
	if err != nil {
		return err
	}
	printLevels(cmd.OutOrStdout(), ls)
	return nil
}

func runLevelsImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	ls, err := levels.Load(path)
	if err != nil {
		return err
	}
	if len(ls) == 0 {
		return fmt.Errorf("no level files in %s", path)
	}

	name := flagPackName
	if name == "" {
		name = levels.Slug(filepath.Base(path))
	}
	if name == builtinPack {
		return fmt.Errorf("pack name %q is reserved", builtinPack)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveLevelPack(name, ls); err != nil {
		return err
	}
	logger.Info("Level pack imported", "pack", name, "levels", len(ls))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d levels as %q.\n", len(ls), name)
	return nil
}

func runLevelsExport(cmd *cobra.Command, args []string) error {
	var format levels.Format
	switch flagExportFormat {
	case "yaml", "yml":
		format = levels.FormatYAML
	case "json":
		format = levels.FormatJSON
	default:
		return fmt.Errorf("unknown format %q, expected yaml or json", flagExportFormat)
	}

	ls, err := packLevels(args[0])
	if err != nil {
		return err
	}
	paths, err := levels.SaveDir(args[1], ls, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	return nil
}

func runLevelsDelete(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteLevelPack(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted pack %q.\n", args[0])
	return nil
}

// resolveLevels loads a path when it exists on disk, otherwise a pack.
func resolveLevels(arg string) ([]levels.Level, error) {
	if _, err := os.Stat(arg); err == nil {
		return levels.Load(arg)
	}
	return packLevels(arg)
}

// packLevels returns the builtin campaign or a stored pack.
func packLevels(name string) ([]levels.Level, error) {
	if name == builtinPack {
		return breakout.BuiltinLevels(breakoutConfig()), nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.LoadLevelPack(name)
}

// breakoutConfig loads the breakout config, falling back to defaults.
func breakoutConfig() config.BreakoutConfig {
	cfg, err := config.LoadBreakout("")
	if err != nil {
		logger.Warn("Using default breakout config", "err", err)
		return config.DefaultBreakoutConfig()
	}
	return cfg
}

func printLevels(out io.Writer, ls []levels.Level) {
	fmt.Fprintf(out, "  %-3s  %-20s  %5s  %6s\n", "#", "Name", "Grids", "Bricks")
	for i, l := range ls {
		fmt.Fprintf(out, "  %-3d  %-20s  %5d  %6d\n", i+1, l.Name, len(l.Grids), l.AliveCount())
	}
}
