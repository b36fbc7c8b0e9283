package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/service"
)

var (
	listLimit  int
	listOffset int
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes, newest first",
	Args:  cobra.NoArgs,
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

		notes, err := app.notesSvc.List(ctx, service.ListOptions{
			Limit:  listLimit,
			Offset: listOffset,
		})
		if err != nil {
			return err
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(notes)
		}

		if len(notes) == 0 {
			fmt.Println("No notes yet.")
			return nil
		}
		for _, note := range notes {
			fmt.Printf("%s  [%s]  %s\n", note.ID, note.Subject, note.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum notes to return (default 100)")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Notes to skip")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
