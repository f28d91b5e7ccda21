// Package root contains the root command and the shared application wiring.
package root

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"flowpay/flowpay/internal/ai"
	"flowpay/flowpay/internal/categorizer"
	"flowpay/flowpay/internal/common"
	"flowpay/flowpay/internal/config"
	"flowpay/flowpay/internal/expense"
	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
	"flowpay/flowpay/internal/store"

	"github.com/shopspring/decimal"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg holds the resolved application configuration after PersistentPreRun.
	Cfg *config.Config

	manager   *expense.Manager
	assistant *ai.Assistant
	gateway   *ai.Gateway

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "flowpay",
		Short: "An expense management assistant with AI categorization and budget insights.",
		Long: `flowpay tracks business expenses in a local store, categorizes them with
the Gemini model (falling back to keyword heuristics offline), and answers
budget questions with grounded AI insights.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to flowpay!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			common.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}
)

// Init initializes the root command.
func Init() {
	// All flags live on the subcommands; the root only wires shared state.
}

// Logger returns the shared logger behind the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Gateway returns the lazily constructed AI gateway.
func Gateway() *ai.Gateway {
	if gateway != nil {
		return gateway
	}

	logger := Logger()
	var client ai.Client
	if Cfg.AI.Enabled {
		client = ai.NewGeminiClient(Cfg.AI.APIKey, ai.GenerationParams{
			Model:       Cfg.AI.Model,
			Temperature: Cfg.AI.Temperature,
			TopK:        Cfg.AI.TopK,
			TopP:        Cfg.AI.TopP,
			MaxTokens:   Cfg.AI.MaxTokens,
		}, logger)
	}

	gateway = ai.NewGateway(client, time.Duration(Cfg.AI.TimeoutSeconds)*time.Second, logger)
	return gateway
}

// Assistant returns the lazily constructed assistant.
func Assistant() *ai.Assistant {
	if assistant == nil {
		assistant = ai.NewAssistant(Gateway(), Logger())
	}
	return assistant
}

// Manager returns the lazily constructed expense manager, loading the
// persisted collection on first use.
func Manager() *expense.Manager {
	if manager != nil {
		return manager
	}

	logger := Logger()

	rules, err := categorizer.LoadRules(Cfg.Categorization.RulesFile, logger)
	if err != nil {
		Log.Warnf("Failed to load category rules: %v", err)
	}

	cat := categorizer.NewCategorizer(
		categorizer.NewAIStrategy(Gateway(), logger),
		categorizer.NewKeywordStrategy(rules, logger),
		logger,
	)

	st := store.NewExpenseStore(Cfg.Data.Directory, Cfg.Data.StorageKey, logger)

	budget := models.DefaultBudget()
	if Cfg.Budget.MonthlyTotal > 0 {
		budget.Total = decimal.NewFromFloat(Cfg.Budget.MonthlyTotal)
	}

	manager = expense.NewManager(st, cat, budget, Cfg.User.Name, logger)
	return manager
}
