package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/service"
	"github.com/studybuddy/studybuddy/internal/validate"
)

var (
	editTitle   string
	editContent string
	editSubject string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of an existing note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in service.UpdateNoteInput
		if cmd.Flags().Changed("title") {
			in.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			in.Content = &editContent
		}
		if cmd.Flags().Changed("subject") {
			in.Subject = &editSubject
		}
		if in.Title == nil && in.Content == nil && in.Subject == nil {
			return fmt.Errorf("nothing to update: pass --title, --content, or --subject")
		}

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

		// Validate the merged note, not just the patch.
		current, err := app.notesSvc.Get(ctx, args[0])
		if err != nil {
			return err
		}
		merged := validate.NoteInput{
			Title:   current.Title,
			Content: current.Content,
			Subject: current.Subject,
		}
		if in.Title != nil {
			merged.Title = *in.Title
		}
		if in.Content != nil {
			merged.Content = *in.Content
		}
		if in.Subject != nil {
			merged.Subject = *in.Subject
		}
		if res := validate.Note(merged); !res.Valid {
			return fmt.Errorf("%s", res.Err)
		}

		if _, res := app.notes.Update(ctx, args[0], in); !res.Success {
			return fmt.Errorf("%s", res.Err)
		}

		fmt.Println(model.MsgNoteUpdated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().StringVarP(&editSubject, "subject", "s", "", "New subject")
}
