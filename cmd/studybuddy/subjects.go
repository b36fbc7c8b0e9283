package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the available note subjects",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, subject := range model.Subjects {
			fmt.Println(subject)
		}
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}
