package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/studybuddy/studybuddy/internal/backend/surreal"
	"github.com/studybuddy/studybuddy/internal/config"
	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/service"
	"github.com/studybuddy/studybuddy/internal/state"
)

var (
	verbose  bool
	email    string
	password string

	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "studybuddy",
	Short: model.AppDescription,
	Long: model.AppName + ` keeps your study notes on a SurrealDB backend.
Register an account, then create, search, and organize notes by subject.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level, _ := zerolog.ParseLevel(cfg.Log.Level)
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&email, "email", "e", os.Getenv("STUDYBUDDY_EMAIL"), "Account email (or STUDYBUDDY_EMAIL)")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", os.Getenv("STUDYBUDDY_PASSWORD"), "Account password (or STUDYBUDDY_PASSWORD)")
}

// app bundles the connected client and the stores a command works through.
type app struct {
	client   *surreal.Client
	auth     *state.Auth
	notes    *state.Notes
	notesSvc *service.Notes
}

// newApp connects to the backend and wires the service and state layers.
func newApp(ctx context.Context) (*app, error) {
	client := surreal.New(surreal.Config{
		Endpoint:  cfg.Backend.Endpoint,
		Namespace: cfg.Backend.Namespace,
		Database:  cfg.Backend.Database,
		User:      cfg.Backend.User,
		Password:  cfg.Backend.Password,
	}, log)
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	notesSvc := service.NewNotes(client, cfg.Backend.Collection, log)
	return &app{
		client:   client,
		auth:     state.NewAuth(service.NewAuth(client, log)),
		notes:    state.NewNotes(notesSvc),
		notesSvc: notesSvc,
	}, nil
}

func (a *app) close() {
	if err := a.client.Close(); err != nil {
		log.Debug().Err(err).Msg("close failed")
	}
}

// login establishes the session for commands that need one. Credentials come
// from the persistent flags or their environment fallbacks.
func (a *app) login(ctx context.Context) error {
	if email == "" || password == "" {
		return fmt.Errorf("credentials required: pass --email and --password or set STUDYBUDDY_EMAIL and STUDYBUDDY_PASSWORD")
	}
	if res := a.auth.Login(ctx, email, password); !res.Success {
		return fmt.Errorf("%s", res.Err)
	}
	return nil
}

// commandContext returns the per-invocation context bounded by the configured
// backend timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), cfg.Backend.Timeout)
}
