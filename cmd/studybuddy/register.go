package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/validate"
)

var registerName string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var problems []string
		if res := validate.Email(email); !res.Valid {
			problems = append(problems, "email: "+res.Err)
		}
		if res := validate.Password(password); !res.Valid {
			problems = append(problems, "password: "+res.Err)
		}
		if res := validate.Name(registerName); !res.Valid {
			problems = append(problems, "name: "+res.Err)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%s", strings.Join(problems, "\n"))
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		app, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer app.close()

		if res := app.auth.Register(ctx, email, password, registerName); !res.Success {
			return fmt.Errorf("%s", res.Err)
		}

		fmt.Println(model.MsgRegisterSuccess)
		if user := app.auth.User(); user != nil {
			fmt.Printf("Welcome, %s!\n", user.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Display name")
	registerCmd.MarkFlagRequired("name")
}
