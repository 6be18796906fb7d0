package main

import (
	"context"
	"encoding/json"
	"fmt"
	"labourlink-backend/config"
	"labourlink-backend/db"
	counterreconcile "labourlink-backend/lib/counter-reconcile"
	authutils "labourlink-backend/lib/utils/auth-utils"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labourlink-admin",
	Short: "LabourLink operator tools",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.InitConfig()
	},
}

func main() {
	log.SetLevel(log.WarnLevel)
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.AddCommand(migrateCmd(), reconcileCmd(), tokenCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func connect(migrate bool) error {
	return db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, false, migrate)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(true); err != nil {
				return err
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}

func reconcileCmd() *cobra.Command {
	var fix bool
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compare vacancy fill counters with accepted applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(false); err != nil {
				return err
			}
			counterreconcile.NewHandler()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			list, err := counterreconcile.Instance.Check(ctx, fix)
			if err != nil {
				return errors.Wrap(err, "reconciliation failed")
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}
			if len(list) == 0 {
				fmt.Println("no drift found")
				return nil
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Vacancy", "Title", "Worker count", "Filled", "Accepted", "Fixed"})
			for _, d := range list {
				tw.AppendRow(table.Row{d.VacancyID, d.JobTitle, d.WorkerCount, d.FilledCount, d.Accepted, d.Fixed})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "rewrite drifting counters")
	return cmd
}

func tokenCmd() *cobra.Command {
	var userID, phone string
	var expire time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}
			if config.Conf.Auth.JWTSecret == "" {
				return errors.New("auth JWT secret is not configured")
			}
			token, err := authutils.GetTokenWithSecret(config.Conf.Auth.JWTSecret, expire, userID, phone)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (sub claim)")
	cmd.Flags().StringVar(&phone, "phone", "", "verified phone")
	cmd.Flags().DurationVar(&expire, "expire", 24*time.Hour, "token lifetime")
	return cmd
}
