package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DealeGear/synapse/internal/app"
)

var registerBio string

var registerCmd = &cobra.Command{
	Use:   "register <username> <secret>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(2),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		res, err := a.Auth.Register(ctx, args[0], args[1], registerBio)
		if err != nil {
			return err
		}
		logger.Debug("account created", zap.String("username", res.User.Username))
		fmt.Printf("welcome, @%s\n", res.User.Username)
		printUnlocks(res.Unlocked)
		return nil
	}),
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <secret>",
	Short: "Sign in to an existing account",
	Args:  cobra.ExactArgs(2),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		u, err := a.Auth.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("signed in as @%s\n", u.Username)
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		if err := a.Auth.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		u, err := a.Auth.Current(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("@%s\n", u.Username)
		return nil
	}),
}

var profileBio string

var profileCmd = &cobra.Command{
	Use:   "profile [username]",
	Short: "Show a profile, or edit your own bio with --bio",
	Args:  cobra.MaximumNArgs(1),
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		if profileCmdFlagSet {
			u, err := a.Auth.UpdateBio(ctx, profileBio)
			if err != nil {
				return err
			}
			fmt.Printf("bio updated for @%s\n", u.Username)
			return nil
		}

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
		p, err := a.Feed.Profile(ctx, u.ID)
		if err != nil {
			return err
		}
		fmt.Printf("@%s — %s\n", p.User.Username, p.User.Bio)
		fmt.Printf("posts: %d  following: %d  followers: %d\n", p.PostCount, p.FollowingCount, p.FollowerCount)
		for _, v := range p.Posts {
			printPost(v)
		}
		return nil
	}),
}

// profileCmdFlagSet tracks whether --bio was given, so an empty bio can still
// be an intentional edit.
var profileCmdFlagSet bool

var (
	prefsDark bool
	prefsLang string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change UI preferences",
	Args:  cobra.NoArgs,
	RunE: run(func(ctx context.Context, a *app.App, args []string) error {
		p, err := a.Prefs.Get(ctx)
		if err != nil {
			return err
		}
		changed := false
		if prefsCmdDarkSet {
			p.DarkMode = prefsDark
			changed = true
		}
		if prefsLang != "" {
			p.Language = prefsLang
			changed = true
		}
		if changed {
			if err := a.Prefs.Set(ctx, p); err != nil {
				return err
			}
		}
		fmt.Printf("dark mode: %v  language: %s\n", p.DarkMode, p.Language)
		return nil
	}),
}

var prefsCmdDarkSet bool

func printUnlocks(ids []string) {
	for _, id := range ids {
		fmt.Printf("achievement unlocked: %s\n", id)
	}
}

func init() {
	registerCmd.Flags().StringVar(&registerBio, "bio", "", "profile bio")

	profileCmd.Flags().StringVar(&profileBio, "bio", "", "replace your bio")
	profileCmd.PreRun = func(cmd *cobra.Command, _ []string) {
		profileCmdFlagSet = cmd.Flags().Changed("bio")
	}

	prefsCmd.Flags().BoolVar(&prefsDark, "dark-mode", false, "toggle dark mode")
	prefsCmd.Flags().StringVar(&prefsLang, "language", "", "interface language")
	prefsCmd.PreRun = func(cmd *cobra.Command, _ []string) {
		prefsCmdDarkSet = cmd.Flags().Changed("dark-mode")
	}

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd, profileCmd, prefsCmd)
}
