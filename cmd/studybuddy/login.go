package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify your credentials against the backend",
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

		fmt.Println(model.MsgLoginSuccess)
		if user := app.auth.User(); user != nil {
			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
