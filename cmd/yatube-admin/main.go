package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"yatube/internal/config"
	"yatube/internal/logger"
	"yatube/internal/model"
	prometheus_metrics "yatube/internal/metrics/prometheus"
	group_postgres "yatube/internal/repository/group/postgres"
	group_service "yatube/internal/service/group"
)

func newGroupService(ctx context.Context) (group_service.Service, func(), error) {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	repo := group_postgres.NewGroupRepository(pool, log, prometheus_metrics.NewMetricsProvider())
	return group_service.NewGroupService(repo, log), pool.Close, nil
}

func newCreateGroupCmd() *cobra.Command {
	var slugFlag string

	cmd := &cobra.Command{
		Use:   "create-group <title> <description>",
		Short: "Create a community group posts can be assigned to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			service, closePool, err := newGroupService(ctx)
			if err != nil {
				return err
			}
			defer closePool()

			group, err := service.CreateGroup(ctx, &model.CreateGroupDTO{
				Title:       args[0],
				Slug:        slugFlag,
				Description: args[1],
			})
			if err != nil {
				return err
			}

			cmd.Printf("Created group %d: %s (/group/%s/)\n", group.ID, group.Title, group.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&slugFlag, "slug", "", "URL slug for the group (derived from the title when empty)")
	return cmd
}

func newListGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-groups",
		Short: "List all groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			service, closePool, err := newGroupService(ctx)
			if err != nil {
				return err
			}
			defer closePool()

			groups, err := service.ListGroups(ctx)
			if err != nil {
				return err
			}

			for _, group := range groups {
				cmd.Printf("%d\t%s\t/group/%s/\n", group.ID, group.Title, group.Slug)
			}
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:           "yatube-admin",
		Short:         "Administrative commands for the Yatube service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCreateGroupCmd(), newListGroupsCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
