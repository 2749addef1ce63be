// Command synapse is the CLI front end for the embedded social-networking
// engine. All state lives in a local SQLite database; no network is involved.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DealeGear/synapse/internal/app"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/storage/sqlite"
)

var (
	dataPath string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "synapse",
	Short: "A local social-networking engine",
	Long: `synapse keeps a small social network on your own disk: accounts, posts,
likes, comments, reposts, a follow graph, topic clusters, notifications,
and achievements. Nothing ever leaves the machine.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// dataDir resolves the database location, honoring XDG conventions.
func dataDir() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "synapse")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "synapse")
}

// openApp opens the store, wires the application, and seeds first-run data.
// The returned closer releases the database handle.
func openApp(ctx context.Context) (*app.App, func(), error) {
	store, err := sqlite.Open(dataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	a, err := app.New(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	if err := a.SeedDemo(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("seed demo data: %w", err)
	}
	return a, func() { _ = store.Close() }, nil
}

// run wraps a command body with app setup and teardown.
func run(body func(ctx context.Context, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, closer, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closer()
		return body(ctx, a, args)
	}
}

func parsePostID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q", s)
	}
	return id, nil
}

func printPost(v model.PostView) {
	fmt.Printf("#%d @%s  %s\n", v.ID, v.Author.Username, v.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  %s\n", v.Content)
	if len(v.Likes) > 0 || len(v.Reposts) > 0 {
		fmt.Printf("  likes: %d  reposts: %d\n", len(v.Likes), len(v.Reposts))
	}
	for _, c := range v.Comments {
		fmt.Printf("  └ @%s: %s\n", c.Author.Username, c.Content)
	}
}

func joinArgs(args []string) string { return strings.Join(args, " ") }

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", filepath.Join(dataDir(), "synapse.db"), "database file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
