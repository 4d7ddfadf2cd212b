package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloombasket/notifier/internal/config"
	"github.com/bloombasket/notifier/internal/database"
	"github.com/bloombasket/notifier/internal/email"
	"github.com/bloombasket/notifier/internal/logger"
	"github.com/bloombasket/notifier/internal/model"
	"github.com/bloombasket/notifier/internal/render"
	"github.com/bloombasket/notifier/internal/repository"
	"github.com/bloombasket/notifier/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "notifier",
	Short: "BloomBasket order notification service",
}

var sendTestCmd = &cobra.Command{
	Use:   "send-test",
	Short: "Send a canned test email to verify transport connectivity",
	RunE:  runSendTest,
}

var previewCmd = &cobra.Command{
	Use:   "preview [confirmation|status]",
	Short: "Render a notification from a JSON order file without sending it",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var (
	testRecipient string
	previewFile   string
	previewHTML   bool
)

func init() {
	sendTestCmd.Flags().StringVar(&testRecipient, "to", "", "recipient address (required)")
	_ = sendTestCmd.MarkFlagRequired("to")

	previewCmd.Flags().StringVar(&previewFile, "json", "", "path to the order JSON file (required)")
	previewCmd.Flags().BoolVar(&previewHTML, "html", false, "print the HTML body instead of plain text")
	_ = previewCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(sendTestCmd)
	rootCmd.AddCommand(previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newNotificationService wires config, logger, transport and the optional
// delivery log / cooldown stores.
func newNotificationService(ctx context.Context) (*service.NotificationService, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	sender, err := email.New(ctx, cfg.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize email transport: %w", err)
	}
	log.Info().Str("provider", cfg.Email.Provider).Msg("email transport initialized")

	var deliveries *repository.DeliveryRepository
	if cfg.Database.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		deliveries = repository.NewDeliveryRepository(db)
		log.Info().Msg("connected to PostgreSQL")
	}

	var rdb *database.Redis
	if cfg.Redis.Enabled {
		rdb, err = database.NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info().Msg("connected to Redis")
	}

	renderer := render.Renderer{IncludeQR: cfg.Notifications.IncludeQRCode}
	svc := service.NewNotificationService(sender, renderer, deliveries, rdb, cfg, log)
	return svc, log, nil
}

func runSendTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, log, err := newNotificationService(ctx)
	if err != nil {
		return err
	}

	res := svc.SendTest(ctx, testRecipient)
	if !res.OK() {
		return fmt.Errorf("test send failed: %v", res.Err)
	}
	log.Info().Str("recipient", testRecipient).Msg("test email sent")
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(previewFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", previewFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	renderer := render.Renderer{IncludeQR: cfg.Notifications.IncludeQRCode}

	var msg render.Message
	switch args[0] {
	case "confirmation":
		var order model.Order
		if err := json.Unmarshal(data, &order); err != nil {
			return fmt.Errorf("failed to parse order JSON: %w", err)
		}
		msg, err = renderer.Confirmation(order)
	case "status":
		var update model.StatusUpdate
		if err := json.Unmarshal(data, &update); err != nil {
			return fmt.Errorf("failed to parse status JSON: %w", err)
		}
		msg, err = renderer.StatusUpdate(update)
	default:
		return fmt.Errorf("unknown preview kind: %s (want confirmation or status)", args[0])
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Printf("Subject: %s\n\n", msg.Subject)
	if previewHTML {
		fmt.Println(msg.HTML)
	} else {
		fmt.Println(msg.Text)
	}
	return nil
}
