// Command csvproc runs one constrained SELECT query against a catalog of
// delimited-file tables and prints the result as a grid.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MDx3R/csv-processor/sql/catalog"
	"github.com/MDx3R/csv-processor/sql/engine"
	"github.com/MDx3R/csv-processor/sql/parse"
	"github.com/MDx3R/csv-processor/sql/plan"
	"github.com/MDx3R/csv-processor/sql/render"
)

func main() {
	var (
		catalogPath string
		tableFlag   string
		where       string
		aggregates  []string
		groupBys    []string
		sortBy      []string
		offset      int
		limit       int
		hasOffset   bool
		hasLimit    bool
		verbose     bool
	)

	rootCmd := &cobra.Command{
		Use:   "csvproc",
		Short: "Run a constrained SELECT query over delimited-file tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}

			cfg := parse.QueryConfig{
				Table:      tableStem(tableFlag),
				Where:      where,
				Aggregates: aggregates,
				GroupBys:   groupBys,
				Sort:       sortBy,
			}
			if hasOffset {
				cfg.Offset = &offset
			}
			if hasLimit {
				cfg.Limit = &limit
			}

			resolver := parse.NewExpressionResolver(cat)
			parser := parse.NewConsoleSelectParser(resolver)
			stmt, err := parser.Parse(cfg)
			if err != nil {
				return err
			}

			planner := plan.NewPlanner(cat)
			node, err := planner.CreatePlan(stmt)
			if err != nil {
				return err
			}

			eng := engine.New()
			result, err := eng.Run(node)
			if err != nil {
				return err
			}

			return render.Table(cmd.OutOrStdout(), result)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&tableFlag, "table", "", "table name or path whose stem names a catalog entry")
	flags.StringVar(&tableFlag, "file", "", "alias for --table")
	flags.StringVar(&where, "where", "", "single comparison condition: COL OP LITERAL")
	flags.StringArrayVar(&aggregates, "aggregate", nil, "aggregate spec LHS=FUNC, repeatable")
	flags.StringArrayVar(&groupBys, "group-by", nil, "group-by column, repeatable")
	flags.StringArrayVar(&sortBy, "sort", nil, "sort column, repeatable")
	flags.StringArrayVar(&sortBy, "order-by", nil, "alias for --sort")
	flags.IntVar(&offset, "offset", 0, "number of rows to drop")
	flags.IntVar(&limit, "limit", 0, "maximum number of rows to return")
	flags.StringVar(&catalogPath, "catalog", "catalog.yaml", "path to the catalog descriptor")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		hasOffset = cmd.Flags().Changed("offset")
		hasLimit = cmd.Flags().Changed("limit")
		if tableFlag == "" {
			return fmt.Errorf("one of --table or --file is required")
		}
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tableStem reduces a --table/--file value to its catalog entry name:
// the filename without directory or extension.
func tableStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
