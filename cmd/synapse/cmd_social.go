package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DealeGear/synapse/internal/app"
	"github.com/DealeGear/synapse/internal/model"
)

var followCmd = &cobra.Command{
	Use:   "follow <username>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		target, err := a.UserByUsername(ctx, args[0])
		if err != nil {
			return err
		}
		res, err := a.Social.Follow(ctx, target.ID)
		if err != nil {
			return err
		}
		if res.Followed {
			fmt.Printf("now following @%s\n", target.Username)
		} else {
			fmt.Printf("already following @%s\n", target.Username)
		}
		printUnlocks(res.Unlocked)
		return nil
	}),
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <username>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		target, err := a.UserByUsername(ctx, args[0])
		if err != nil {
			return err
		}
		if err := a.Social.Unfollow(ctx, target.ID); err != nil {
			return err
		}
		fmt.Printf("unfollowed @%s\n", target.Username)
		return nil
	}),
}

var connectionsDirection string

var connectionsCmd = &cobra.Command{
	Use:   "connections [username]",
	Short: "List who a user follows, or their followers with --direction followers",
	Args:  cobra.MaximumNArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		var target string
		if len(args) == 1 {
			target = args[0]
		} else {
			me, err := a.Auth.Current(ctx)
			if err != nil {
				return err
			}
			target = me.Username
		}
		u, err := a.UserByUsername(ctx, target)
		if err != nil {
			return err
		}
		dir := model.Direction(connectionsDirection)
		if dir != model.DirectionFollowing && dir != model.DirectionFollowers {
			return fmt.Errorf("direction must be %q or %q", model.DirectionFollowing, model.DirectionFollowers)
		}
		list, err := a.Social.Connections(ctx, u.ID, dir)
		if err != nil {
			return err
		}
		for _, c := range list {
			fmt.Printf("@%s — %s\n", c.Username, c.Bio)
		}
		return nil
	}),
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest users to follow",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		list, err := a.Feed.Suggest(ctx, 0)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("no one left to suggest")
			return nil
		}
		for _, u := range list {
			fmt.Printf("@%s — %s\n", u.Username, u.Bio)
		}
		return nil
	}),
}

var graphCmd = &cobra.Command{
	Use:   "graph [username]",
	Short: "Print a user's connection graph layout as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		var target string
		if len(args) == 1 {
			target = args[0]
		} else {
			me, err := a.Auth.Current(ctx)
			if err != nil {
				return err
			}
			target = me.Username
		}
		u, err := a.UserByUsername(ctx, target)
		if err != nil {
			return err
		}
		g, err := a.Social.ConnectionGraph(ctx, u.ID)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}),
}

func init() {
	connectionsCmd.Flags().StringVar(&connectionsDirection, "direction", string(model.DirectionFollowing), "following or followers")
	rootCmd.AddCommand(followCmd, unfollowCmd, connectionsCmd, suggestCmd, graphCmd)
}
