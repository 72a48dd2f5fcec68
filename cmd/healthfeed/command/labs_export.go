package command

import (
	"context"
	"fmt"

	"github.com/plemya-health/healthfeed/labs"
	"github.com/plemya-health/healthfeed/pointer"
	"github.com/plemya-health/healthfeed/store"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v3"
)

var labsExportOutput string

var labsExportCmd = &cobra.Command{
	Use:   "labs-export [userId]",
	Short: "Export a user's lab results to an xlsx workbook",
	Long:  "The labs-export command writes every extracted lab value of a user to a spreadsheet, one panel per sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userId := args[0]
		return Run(func(service labs.Service) error {
			return exportLabs(service, userId)
		})
	},
}

func exportLabs(service labs.Service, userId string) error {
	page := store.DefaultPagination().WithLimit(1000)
	results, err := service.List(context.TODO(), &labs.Filter{UserId: &userId}, page)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheets := map[string]*xlsx.Sheet{}

	for _, result := range results {
		category := pointer.ToString(result.Category)
		sheet, ok := sheets[category]
		if !ok {
			sheet, err = file.AddSheet(labs.CategoryName(category))
			if err != nil {
				return err
			}
			header := sheet.AddRow()
			for _, title := range []string{"Test Date", "Name", "Value", "Unit", "Reference Range", "Status"} {
				header.AddCell().SetString(title)
			}
			sheets[category] = sheet
		}

		testDate := ""
		if result.TestDate != nil {
			testDate = result.TestDate.Format("2006-01-02")
		}
		for _, value := range result.Values {
			row := sheet.AddRow()
			row.AddCell().SetString(testDate)
			row.AddCell().SetString(value.Name)
			row.AddCell().SetFloat(value.Value)
			row.AddCell().SetString(pointer.ToString(value.Unit))
			row.AddCell().SetString(pointer.ToString(value.ReferenceRange))
			row.AddCell().SetString(value.Status)
		}
	}

	if err := file.Save(labsExportOutput); err != nil {
		return err
	}
	fmt.Printf("Exported %v lab panels to %s\n", len(results), labsExportOutput)

	return nil
}

func init() {
	labsExportCmd.Flags().StringVarP(&labsExportOutput, "output", "o", "labs.xlsx", "Output file path")
	rootCmd.AddCommand(labsExportCmd)
}
