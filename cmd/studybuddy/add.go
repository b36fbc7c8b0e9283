package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/service"
	"github.com/studybuddy/studybuddy/internal/validate"
)

var (
	addTitle   string
	addContent string
	addSubject string
	addTags    []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new study note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if res := validate.Note(validate.NoteInput{
			Title:   addTitle,
			Content: addContent,
			Subject: addSubject,
		}); !res.Valid {
			return fmt.Errorf("%s", res.Err)
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

		note, res := app.notes.Create(ctx, service.CreateNoteInput{
			Title:   addTitle,
			Content: addContent,
			Subject: addSubject,
			Tags:    addTags,
		})
		if !res.Success {
			return fmt.Errorf("%s", res.Err)
		}

		fmt.Println(model.MsgNoteCreated)
		fmt.Printf("ID: %s\n", note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Note content")
	addCmd.Flags().StringVarP(&addSubject, "subject", "s", "Other", "Subject (see 'studybuddy subjects')")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "Tag to attach (repeatable)")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("content")
}
