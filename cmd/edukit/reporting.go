package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/edukit/reporting"
)

func (a *app) gradesCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Grade students from a YAML or JSON score file",
		Example: `  edukit grades -f scores.yml
  echo '{"Alice": [85, 90, 88]}' | edukit grades -f - -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			book, err := loadFile(cmd, file, reporting.LoadGradebook)
			if err != nil {
				return err
			}
			results, err := reporting.GradeStudents(book)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), results, func(w io.Writer) error {
				return reporting.AnalyzeGrades(w, book)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "score file, a mapping of student to scores (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) inventoryCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "inventory",
		Short:   "Report low and out-of-stock items from a YAML or JSON inventory file",
		Example: `  edukit inventory -f inventory.yml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := loadFile(cmd, file, reporting.LoadInventory)
			if err != nil {
				return err
			}
			alerts, err := reporting.InventoryAlerts(items)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), alerts, func(w io.Writer) error {
				return reporting.FilterInventory(w, items)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "inventory file, a list of {item, stock, price} (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

type commonResult struct {
	Common []int `json:"common" yaml:"common"`
}

func (a *app) commonCommand() *cobra.Command {
	var first, second []int
	cmd := &cobra.Command{
		Use:     "common",
		Short:   "Print the elements of --a that also occur in --b",
		Example: `  edukit common --a 1,2,3,4,5,10 --b 4,5,6,7,8,10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := commonResult{Common: reporting.FindCommonElements(first, second)}
			return a.render(cmd.OutOrStdout(), res, res.writeText)
		},
	}
	cmd.Flags().IntSliceVar(&first, "a", nil, "first list")
	cmd.Flags().IntSliceVar(&second, "b", nil, "second list")
	return cmd
}

func (r commonResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\nCommon elements between lists: %s\n", formatList(r.Common))
	return err
}
