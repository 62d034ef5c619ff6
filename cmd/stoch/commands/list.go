package commands

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "models",
	Short: "Lists the built-in demo models",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(builtinModels))
		for n := range builtinModels {
			names = append(names, n)
		}
		sort.Strings(names)
		bold := color.New(color.Bold)
		for _, n := range names {
			bold.Printf("%-18s", n)
			fmt.Println(builtinModels[n].Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
