package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
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

		if res := app.notes.Delete(ctx, args[0]); !res.Success {
			return fmt.Errorf("%s", res.Err)
		}

		fmt.Println(model.MsgNoteDeleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
