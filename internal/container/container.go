// Package container provides dependency injection for the CLI. It
// centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"time"

	"fbarbosa/invest-recon/internal/config"
	"fbarbosa/invest-recon/internal/extractor"
	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/matcher"
	"fbarbosa/invest-recon/internal/numparse"
	"fbarbosa/invest-recon/internal/recon"
	"fbarbosa/invest-recon/internal/repository"
	"fbarbosa/invest-recon/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation: all fields are private and reachable only through getters, so
// wiring cannot be modified after initialization.
type Container struct {
	config     *config.Config
	logger     logging.Logger
	repository repository.Repository
	numParser  *numparse.Parser
	extractor  *extractor.Extractor
	matcher    *matcher.Matcher
	committer  *recon.Committer
	accounts   *store.AccountStore
}

// New creates and wires all application dependencies.
func New(cfg *config.Config) (*Container, error) {
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	repo := repository.NewHTTPRepository(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		logger,
	)

	numParser := numparse.New(cfg.Locale)

	accounts, err := store.New("", logger)
	if err != nil {
		return nil, err
	}

	return &Container{
		config:     cfg,
		logger:     logger,
		repository: repo,
		numParser:  numParser,
		extractor:  extractor.New(numParser, logger).WithMaxItems(cfg.Extractor.MaxItems),
		matcher:    matcher.New(matcher.LevenshteinScorer{}, cfg.Matcher.Threshold, logger),
		committer:  recon.NewCommitter(repo, logger),
		accounts:   accounts,
	}, nil
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Logger returns the shared logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Repository returns the remote account/transaction repository.
func (c *Container) Repository() repository.Repository { return c.repository }

// NumParser returns the locale-aware numeric parser.
func (c *Container) NumParser() *numparse.Parser { return c.numParser }

// Extractor returns the statement extractor.
func (c *Container) Extractor() *extractor.Extractor { return c.extractor }

// Matcher returns the account matcher.
func (c *Container) Matcher() *matcher.Matcher { return c.matcher }

// Committer returns the reconciliation committer.
func (c *Container) Committer() *recon.Committer { return c.committer }

// AccountStore returns the on-disk account cache.
func (c *Container) AccountStore() *store.AccountStore { return c.accounts }
