package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one note in full",
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

		note, err := app.notesSvc.Get(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Title:   %s\n", note.Title)
		fmt.Printf("Subject: %s\n", note.Subject)
		fmt.Printf("Created: %s\n", note.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("Updated: %s\n", note.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Println()
		fmt.Println(note.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
