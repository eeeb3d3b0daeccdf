package cmd

import (
	"github.com/charmbracelet/log"

	adaptergit "github.com/renato0307/gittree/internal/adapters/git"
	adapterstorage "github.com/renato0307/gittree/internal/adapters/storage"
	"github.com/renato0307/gittree/internal/config"
	"github.com/renato0307/gittree/internal/graph"
	"github.com/renato0307/gittree/internal/logging"
	"github.com/renato0307/gittree/internal/ports"
	"github.com/renato0307/gittree/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	HistoryService *services.HistoryService

	// Internal - for cleanup only
	detailsCache ports.DetailsCache
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cli *CLI) (*Container, error) {
	cfg := cli.Settings()

	inspector, err := adaptergit.OpenGoGitRepository(cli.Repo)
	if err != nil {
		return nil, err
	}

	gitRepo := adaptergit.NewCLIRepository(cli.Repo,
		adaptergit.WithDefaultRange(cfg.Git.DefaultRange),
		adaptergit.WithExtraArgs(cfg.Git.ExtraArgs),
	)

	opts := []services.HistoryOption{
		services.WithParserOptions(graph.WithDelimiter(adaptergit.FieldSeparator)),
	}

	var detailsCache ports.DetailsCache
	if !cli.NoCache {
		dbPath := config.GetCacheDBPath()
		cache, err := adapterstorage.NewSQLiteDetailsCache(dbPath, adapterstorage.WithDebug(cli.Debug))
		if err != nil {
			// Details still work without the cache
			log.Warn("Commit details cache disabled", "path", dbPath, "error", err)
			logging.Logger.Warn("Failed to open details cache", "path", dbPath, "error", err)
		} else {
			detailsCache = cache
			opts = append(opts, services.WithDetailsCache(cache))
		}
	}

	return &Container{
		HistoryService: services.NewHistoryService(gitRepo, inspector, gitRepo, opts...),
		detailsCache:   detailsCache,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.detailsCache != nil {
		return c.detailsCache.Close()
	}
	return nil
}
