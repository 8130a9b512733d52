package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/FichasBot_Go/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Item catalog tools",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate an items file, or the embedded catalog when no path is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogValidate,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	l, err := catalog.NewLoader()
	if err != nil {
		return err
	}

	var cfg *catalog.Config
	source := catalog.ItemsFileName
	if len(args) == 1 {
		source = args[0]
		cfg, err = l.Load(source)
	} else {
		cfg, err = l.LoadEmbedded()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items OK\n", source, len(cfg.Items))
	return nil
}
