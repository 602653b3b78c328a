// Package cli wires configuration into a running application and exposes the
// cobra command tree.
package cli

import (
	"fmt"
	"time"

	"github.com/phuslu/log"

	"babysteps/internal/compose"
	"babysteps/internal/config"
	"babysteps/internal/corpus"
	"babysteps/internal/domain"
	"babysteps/internal/llm"
	"babysteps/internal/retrieval"
	"babysteps/internal/store/memory"
	"babysteps/internal/store/sqlite"
)

// App holds the assembled collaborators for one invocation.
type App struct {
	Config    *config.AppConfig
	Logger    *log.Logger
	Corpus    *corpus.Corpus
	Retriever domain.Retriever
	Composer  domain.Composer
	Parser    *compose.Parser
	Children  domain.ChildStore
	Messages  domain.MessageStore

	closers []func() error
}

// Close releases any resources held by the app, such as database handles.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func newLogger(level string) *log.Logger {
	return &log.Logger{
		Level:  log.ParseLevel(level),
		Writer: &log.ConsoleWriter{ColorOutput: true},
	}
}

// buildApp assembles the application from config.
func buildApp(cfg *config.AppConfig) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: newLogger(cfg.Log.Level),
	}

	if cfg.Corpus.Path != "" {
		c, err := corpus.LoadFile(cfg.Corpus.Path)
		if err != nil {
			return nil, fmt.Errorf("load corpus: %w", err)
		}
		app.Corpus = c
	} else {
		app.Corpus = corpus.Builtin()
	}

	app.Retriever = retrieval.New(app.Corpus, retrieval.NewKeywordScorer())

	composer, err := buildComposer(cfg, app.Logger)
	if err != nil {
		return nil, err
	}
	app.Composer = composer

	var parserOpts []compose.ParserOption
	if cfg.Composer.Bullet != "" {
		parserOpts = append(parserOpts, compose.WithBullet(cfg.Composer.Bullet))
	}
	app.Parser = compose.NewParser(parserOpts...)

	switch cfg.Storage.Type {
	case "sqlite":
		store, err := sqlite.Open(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		app.Children = store
		app.Messages = store
		app.closers = append(app.closers, store.Close)
	default:
		app.Children = memory.NewChildStore()
		app.Messages = memory.NewMessageStore()
	}

	return app, nil
}

func buildComposer(cfg *config.AppConfig, logger *log.Logger) (domain.Composer, error) {
	timeout := time.Duration(cfg.Composer.TimeoutSecs) * time.Second

	switch cfg.Composer.Strategy {
	case "openai":
		var c config.OpenAIConfig
		if cfg.Composer.OpenAI != nil {
			c = *cfg.Composer.OpenAI
		}
		gen, err := llm.NewOpenAIClient(llm.OpenAIConfig{
			BaseURL:     c.BaseURL,
			APIKeyEnv:   c.APIKeyEnv,
			Model:       c.Model,
			Timeout:     timeout,
			MaxTokens:   c.MaxTokens,
			Temperature: c.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("openai composer: %w", err)
		}
		return compose.NewGenerativeComposer(gen, compose.WithTimeout(timeout), compose.WithLogger(logger)), nil

	case "anthropic":
		var c config.AnthropicConfig
		if cfg.Composer.Anthropic != nil {
			c = *cfg.Composer.Anthropic
		}
		gen, err := llm.NewAnthropicClient(llm.AnthropicConfig{
			APIKeyEnv: c.APIKeyEnv,
			Model:     c.Model,
			MaxTokens: c.MaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("anthropic composer: %w", err)
		}
		return compose.NewGenerativeComposer(gen, compose.WithTimeout(timeout), compose.WithLogger(logger)), nil

	default:
		return compose.NewRuleBasedComposer(), nil
	}
}
