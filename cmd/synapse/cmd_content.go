package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DealeGear/synapse/internal/app"
)

var postCmd = &cobra.Command{
	Use:   "post <content>...",
	Short: "Publish a post",
	Args:  cobra.MinimumNArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		res, err := a.Content.Publish(ctx, joinArgs(args))
		if err != nil {
			return err
		}
		fmt.Printf("published post #%d\n", res.Post.ID)
		printUnlocks(res.Unlocked)
		return nil
	}),
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show your feed (you and everyone you follow)",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		feed, err := a.Feed.BuildFeed(ctx)
		if err != nil {
			return err
		}
		if len(feed) == 0 {
			fmt.Println("nothing here yet — post something or follow someone")
			return nil
		}
		for _, v := range feed {
			printPost(v)
		}
		return nil
	}),
}

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like or unlike a post",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		id, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		res, err := a.Content.ToggleLike(ctx, id)
		if err != nil {
			return err
		}
		if res.Added {
			fmt.Printf("liked post #%d\n", id)
		} else {
			fmt.Printf("unliked post #%d\n", id)
		}
		return nil
	}),
}

var repostCmd = &cobra.Command{
	Use:   "repost <post-id>",
	Short: "Repost or un-repost a post",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		id, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		res, err := a.Content.ToggleRepost(ctx, id)
		if err != nil {
			return err
		}
		if res.Added {
			fmt.Printf("reposted #%d\n", id)
		} else {
			fmt.Printf("removed repost of #%d\n", id)
		}
		return nil
	}),
}

var commentCmd = &cobra.Command{
	Use:   "comment <post-id> <content>...",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		id, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		res, err := a.Content.AddComment(ctx, id, joinArgs(args[1:]))
		if err != nil {
			return err
		}
		fmt.Printf("comment #%d added to post #%d\n", res.Comment.ID, id)
		return nil
	}),
}

var mindmapCmd = &cobra.Command{
	Use:   "mindmap [username]",
	Short: "Print the mind-map layout of a user's posts as JSON",
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
		g, err := a.Content.MindMap(ctx, u.ID)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}),
}

func init() {
	rootCmd.AddCommand(postCmd, feedCmd, likeCmd, repostCmd, commentCmd, mindmapCmd)
}
