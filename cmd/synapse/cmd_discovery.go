package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DealeGear/synapse/internal/app"
	"github.com/DealeGear/synapse/internal/model"
)

var trendingTop int

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending hashtags",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		trends, err := a.Feed.Trending(ctx, trendingTop)
		if err != nil {
			return err
		}
		for i, tr := range trends {
			fmt.Printf("%d. %s (%d)\n", i+1, tr.Hashtag, tr.Count)
		}
		return nil
	}),
}

var searchScope string

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search posts, users, or hashtags",
	Args:  cobra.MinimumNArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		scope := model.SearchScope(searchScope)
		switch scope {
		case model.ScopePosts, model.ScopeUsers, model.ScopeHashtags:
		default:
			return fmt.Errorf("scope must be %q, %q, or %q", model.ScopePosts, model.ScopeUsers, model.ScopeHashtags)
		}
		res, err := a.Feed.Search(ctx, joinArgs(args), scope)
		if err != nil {
			return err
		}
		for _, v := range res.Posts {
			printPost(v)
		}
		for _, u := range res.Users {
			fmt.Printf("@%s — %s\n", u.Username, u.Bio)
		}
		for _, tag := range res.Hashtags {
			fmt.Println(tag)
		}
		if len(res.Posts)+len(res.Users)+len(res.Hashtags) == 0 {
			fmt.Println("no matches")
		}
		return nil
	}),
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications, newest first",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		list, err := a.Notifications.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("no notifications")
			return nil
		}
		for _, n := range list {
			marker := "•"
			if n.Read {
				marker = " "
			}
			fmt.Printf("%s #%d %s on post %d\n", marker, n.ID, n.Type, n.PostID)
		}
		return nil
	}),
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		id, err := parsePostID(args[0])
		if err != nil {
			return fmt.Errorf("invalid notification id %q", args[0])
		}
		if err := a.Notifications.MarkRead(ctx, id); err != nil {
			return err
		}
		fmt.Printf("notification #%d read\n", id)
		return nil
	}),
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List unlocked achievements",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		list, err := a.Achievements.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("nothing unlocked yet")
			return nil
		}
		for _, ach := range list {
			fmt.Printf("%s — unlocked %s\n", ach.ID, ach.UnlockedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	}),
}

var reportDescription string

var reportCmd = &cobra.Command{
	Use:   "report <post|user> <target-id> <reason>...",
	Short: "Report a post or user",
	Args:  cobra.MinimumNArgs(3),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		r, err := a.Reports.Submit(ctx, args[0], args[1], joinArgs(args[2:]), reportDescription)
		if err != nil {
			return err
		}
		fmt.Printf("report #%d filed (%s)\n", r.ID, r.Status)
		return nil
	}),
}

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Manage topic clusters",
}

var clustersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clusters",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		list, err := a.Clusters.List(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			fmt.Printf("#%d %s (%s) — %s  members: %d  posts: %d\n",
				c.ID, c.Name, c.Icon, c.Description, len(c.Members), len(c.Posts))
		}
		return nil
	}),
}

var clustersCreateCmd = &cobra.Command{
	Use:   "create <name> <description>...",
	Short: "Create a cluster",
	Args:  cobra.MinimumNArgs(2),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		c, err := a.Clusters.Create(ctx, args[0], joinArgs(args[1:]))
		if err != nil {
			return err
		}
		fmt.Printf("created cluster #%d %s\n", c.ID, c.Name)
		return nil
	}),
}

var clustersJoinCmd = &cobra.Command{
	Use:   "join <cluster-id>",
	Short: "Join a cluster",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		id, err := parsePostID(args[0])
		if err != nil {
			return fmt.Errorf("invalid cluster id %q", args[0])
		}
		me, err := a.Auth.Current(ctx)
		if err != nil {
			return err
		}
		if err := a.Clusters.Join(ctx, id, me.ID); err != nil {
			return err
		}
		fmt.Printf("joined cluster #%d\n", id)
		return nil
	}),
}

var clustersAttachCmd = &cobra.Command{
	Use:   "attach-post <cluster-id> <post-id>",
	Short: "Associate a post with a cluster",
	Args:  cobra.ExactArgs(2),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		clusterID, err := parsePostID(args[0])
		if err != nil {
			return fmt.Errorf("invalid cluster id %q", args[0])
		}
		postID, err := parsePostID(args[1])
		if err != nil {
			return err
		}
		if err := a.Clusters.AttachPost(ctx, clusterID, postID); err != nil {
			return err
		}
		fmt.Printf("post #%d attached to cluster #%d\n", postID, clusterID)
		return nil
	}),
}

func init() {
	trendingCmd.Flags().IntVar(&trendingTop, "top", 0, "number of entries (default 5)")
	searchCmd.Flags().StringVar(&searchScope, "scope", string(model.ScopePosts), "posts, users, or hashtags")
	reportCmd.Flags().StringVar(&reportDescription, "description", "", "additional details")

	notificationsCmd.AddCommand(notificationsReadCmd)
	clustersCmd.AddCommand(clustersListCmd, clustersCreateCmd, clustersJoinCmd, clustersAttachCmd)
	rootCmd.AddCommand(trendingCmd, searchCmd, notificationsCmd, achievementsCmd, reportCmd, clustersCmd)
}
