package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find notes whose title contains the query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.close()

		if err := app.login(ctx); err != nil {
			return err
		}

		results, res := app.notes.Search(ctx, args[0])
		if !res.Success {
			return fmt.Errorf("%s", res.Err)
		}

		if len(results) == 0 {
			fmt.Println("No matching notes.")
			return nil
		}
		for _, note := range results {
			fmt.Printf("%s  [%s]  %s\n", note.ID, note.Subject, note.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
