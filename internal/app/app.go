// Package app wires the expense wizard onto the shared bot runtime.
package app

import (
	"fmt"

	"splitbot/core/buildinfo"
	"splitbot/core/cmd"
	coreconfig "splitbot/core/config"
	"splitbot/core/logger"
	tg "splitbot/core/telegram"
	"splitbot/core/telegram/commands"
	tghelpers "splitbot/core/telegram/helpers"
	"splitbot/core/telegram/router"
	"splitbot/core/telegram/sender"
	"splitbot/core/telegram/ui"
	"splitbot/internal/expense"

	tele "gopkg.in/telebot.v4"
)

// Config carries the core configuration for the runner.
type Config struct {
	core coreconfig.Config
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.core
}

// LoadConfig reads and validates configuration from the given path.
func LoadConfig(path string) (cmd.ConfigCarrier, error) {
	cfg, err := coreconfig.Load(path)
	if err != nil {
		return nil, err
	}
	return &Config{core: *cfg}, nil
}

// App holds everything needed to run the bot.
type App struct {
	cfg        *coreconfig.Config
	registry   *tg.Registry
	dispatcher *sender.Dispatcher
	fallback   ui.FallbackProvider
}

// Bootstrap initializes logging and wires the wizard into a registry.
func Bootstrap(carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
	cfg := carrier.CoreConfig()
	if cfg == nil {
		return nil, fmt.Errorf("app: nil core config")
	}
	if err := logger.InitLogger(cfg); err != nil {
		return nil, fmt.Errorf("app: logger init failed: %w", err)
	}

	a := &App{
		cfg:        cfg,
		registry:   tg.NewRegistry(),
		dispatcher: sender.NewDispatcher(sender.Options{}),
		fallback:   fallbacks{},
	}

	wizard := expense.NewHandler(expense.AdminRoster{})
	a.registry.RegisterCommand("/add_expense", commands.Command{
		Handler:     wizard.StartCommand,
		Description: "Record a shared expense",
	})
	a.registry.RegisterCommand("/version", commands.Command{
		Handler:     a.versionCommand,
		Description: "Show build information",
		AdminOnly:   true,
		Hidden:      true,
	})
	if err := a.registry.RegisterCallback(expense.Category, wizard.Callback); err != nil {
		return nil, fmt.Errorf("app: wizard callback registration failed: %w", err)
	}
	a.registry.SetCallbackNotFound(a.fallback.UnknownCallback())
	a.registry.SetTextFallback(a.fallback.UnknownText())

	return a, nil
}

// TelegramRunOptions assembles middlewares and routes for the bot runtime.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(a.registry, router.CallbackOptions{
		NotFound: a.fallback.UnknownCallback(),
	}))
	routes = append(routes, router.TextRoutes(a.registry, router.TextOptions{
		UnknownText: a.fallback.UnknownText(),
	})...)

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    a.registry,
		Dispatcher:  a.dispatcher,
		Middlewares: tg.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
	}, nil
}

func (a *App) versionCommand(c tele.Context) error {
	text := fmt.Sprintf("splitbot %s (%s)", buildinfo.Version, buildinfo.Commit)
	if buildinfo.Date != "" {
		text += "\nbuilt: " + buildinfo.Date
	}
	text += fmt.Sprintf("\nsend errors: %d", a.dispatcher.ErrorCount())
	return tghelpers.Send(c, text)
}
