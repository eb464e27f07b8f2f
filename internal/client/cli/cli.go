package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/muslimguide/internal/client/api"
	"github.com/iudanet/muslimguide/internal/client/iocli"
	"github.com/iudanet/muslimguide/internal/client/storage"
	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/vote"
)

// Storage локальное хранилище клиента: регистрация устройства, обращения и голоса
type Storage interface {
	storage.DeviceStorage
	storage.ReportStorage
	storage.VoteStorage
}

type Cli struct {
	io       iocli.IO
	client   *api.Client
	store    Storage
	logger   *slog.Logger
	lock     *vote.Lock
	cooldown time.Duration
}

func New(io iocli.IO, client *api.Client, store Storage, logger *slog.Logger, cooldown time.Duration) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:       io,
		client:   client,
		store:    store,
		logger:   logger,
		lock:     vote.NewLock(),
		cooldown: cooldown,
	}
}

// authorize загружает токен устройства и передает его API клиенту
func (c *Cli) authorize(ctx context.Context) (*storage.DeviceData, error) {
	device, err := c.store.GetDevice(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDeviceNotFound) {
			return nil, fmt.Errorf("device is not registered. Please run 'guide register' first")
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	if device.Expired(time.Now()) {
		return nil, fmt.Errorf("device token expired. Please run 'guide register' again")
	}

	c.client.SetToken(device.Token)
	return device, nil
}

// loadVotes читает голоса устройства. Ошибка чтения означает, что голосов нет.
func (c *Cli) loadVotes(ctx context.Context, scope string) models.VoteRecord {
	record, err := c.store.Load(ctx, scope)
	if err != nil {
		c.logger.Warn("Failed to load votes", "scope", scope, "error", err)
		return models.VoteRecord{}
	}
	return record
}

func voteMarker(choice models.VoteChoice) string {
	switch choice {
	case models.VoteLike:
		return " 👍"
	case models.VoteDislike:
		return " 👎"
	default:
		return ""
	}
}

func PrintUsage() {
	fmt.Println("City Muslim Guide Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  guide [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local database (default: guide-client.db)")
	fmt.Println("  --cooldown D       Delay before an item accepts another vote within this process (default: 500ms)")
	fmt.Println("                     The vote lock lives in memory and is not shared between runs")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                                        Register this device")
	fmt.Println("  list <category>                                 List listings (mosque, education, restaurant, community)")
	fmt.Println("  show <id>                                       Show listing details")
	fmt.Println("  menu <restaurantID>                             Show restaurant menu")
	fmt.Println("  featured                                        Show most liked listings and dishes")
	fmt.Println("  campaigns <event|promotion>                     List events or promotions")
	fmt.Println("  vote <category> <id> <like|dislike>             Vote for a listing")
	fmt.Println("  vote menu <restaurantID> <itemID> <like|dislike> Vote for a dish")
	fmt.Println("  votes [scope]                                   Show local votes")
	fmt.Println("  click <category>                                Record a category visit")
	fmt.Println("  report [--name --email --category --other --description]")
	fmt.Println("                                                  Submit a report")
	fmt.Println("  report delete <id>                              Delete own report")
	fmt.Println("  reports                                         List reports sent from this device")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  guide register")
	fmt.Println("  guide list mosque")
	fmt.Println("  guide vote mosque 3f1c2a9e like")
	fmt.Println("  guide vote menu rest-1 dish-1 dislike")
	fmt.Println("  guide --server https://example.com featured")
}
