package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/muslimguide/internal/client/api"
	"github.com/iudanet/muslimguide/internal/client/iocli"
	"github.com/iudanet/muslimguide/internal/client/storage"
	"github.com/iudanet/muslimguide/internal/client/storage/boltdb"
	"github.com/iudanet/muslimguide/internal/metrics"
	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server"
	"github.com/iudanet/muslimguide/internal/server/handlers"
	"github.com/iudanet/muslimguide/internal/server/storage/sqlite"
	"github.com/iudanet/muslimguide/internal/vote"
)

type testEnv struct {
	cli    *Cli
	out    *bytes.Buffer
	local  *boltdb.Storage
	remote *sqlite.Storage
	url    string
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEnv поднимает настоящий сервер на sqlite в памяти и клиента на bbolt во временном каталоге
func newTestEnv(t *testing.T, cooldown time.Duration) *testEnv {
	t.Helper()
	ctx := context.Background()

	remote, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, remote.CreateListing(ctx, &models.Listing{
		ID:        "m1",
		Name:      "Central Masjid",
		Category:  models.CategoryMosque,
		Address:   "1 Main St",
		CreatedAt: time.Now(),
	}))
	require.NoError(t, remote.CreateListing(ctx, &models.Listing{
		ID:        "rest-1",
		Name:      "Halal Corner",
		Category:  models.CategoryRestaurant,
		CreatedAt: time.Now(),
		Menu: []models.MenuItem{
			{ID: "dish-1", Name: "Biryani"},
			{ID: "dish-2", Name: "Samosa"},
		},
	}))

	logger := discardLogger()
	srv := server.New(logger, remote, nil, metrics.New("clitest"), server.Options{
		Version:    "test",
		JWT:        handlers.JWTConfig{Secret: []byte("0123456789abcdef0123456789abcdef"), TokenTTL: time.Hour},
		RateLimit:  1000,
		RateWindow: time.Minute,
	})
	ts := httptest.NewServer(srv.Handler())

	local, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		ts.Close()
		srv.Close()
		assert.NoError(t, local.Close())
		assert.NoError(t, remote.Close())
	})

	out := &bytes.Buffer{}
	stdio := iocli.NewStdioWith(strings.NewReader(""), out)

	return &testEnv{
		cli:    New(stdio, api.NewClient(ts.URL), local, logger, cooldown),
		out:    out,
		local:  local,
		remote: remote,
		url:    ts.URL,
	}
}

func (e *testEnv) run(t *testing.T, command string, args ...string) string {
	t.Helper()
	e.out.Reset()
	require.NoError(t, e.cli.Run(context.Background(), command, args))
	return e.out.String()
}

func (e *testEnv) waitUnlocked(t *testing.T, scope, itemID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return !e.cli.lock.IsLocked(vote.LockKey(scope, itemID))
	}, time.Second, 5*time.Millisecond)
}

func TestCli_Register(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()

	out := env.run(t, "register")
	assert.Contains(t, out, "Device registered")

	device, err := env.local.GetDevice(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, device.DeviceID)
	assert.NotEmpty(t, device.Token)
	assert.Greater(t, device.ExpiresAt, time.Now().Unix())

	out = env.run(t, "register")
	assert.Contains(t, out, "Device already registered: "+device.DeviceID)
}

func TestCli_Register_ExpiredTokenIsRenewed(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, env.local.SaveDevice(ctx, &storage.DeviceData{
		DeviceID:  "old-device",
		Token:     "old-token",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}))

	env.run(t, "register")

	device, err := env.local.GetDevice(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "old-device", device.DeviceID)
}

func TestCli_VoteRequiresRegistration(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)

	err := env.cli.Run(context.Background(), "vote", []string{"mosque", "m1", "like"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guide register")
}

func TestCli_VoteArguments(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()

	tests := []struct {
		name string
		args []string
	}{
		{name: "too few", args: []string{"mosque", "m1"}},
		{name: "bad category", args: []string{"bakery", "m1", "like"}},
		{name: "bad choice", args: []string{"mosque", "m1", "love"}},
		{name: "menu too few", args: []string{"menu", "rest-1", "like"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, env.cli.Run(ctx, "vote", tt.args))
		})
	}
}

// Полный цикл: like, смена на dislike, повторный dislike снимает голос
func TestCli_VoteLifecycle(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()
	env.run(t, "register")

	out := env.run(t, "vote", "mosque", "m1", "like")
	assert.Contains(t, out, "Voted like")
	env.waitUnlocked(t, "masjidVotes", "m1")

	listing, err := env.remote.GetListing(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.ItemCounters{Likes: 1, Dislikes: 0}, listing.ItemCounters)

	out = env.run(t, "list", "mosque")
	assert.Contains(t, out, "1. Central Masjid 👍")
	assert.Contains(t, out, "Likes:   1  Dislikes: 0")

	env.run(t, "vote", "mosque", "m1", "dislike")
	env.waitUnlocked(t, "masjidVotes", "m1")

	listing, err = env.remote.GetListing(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.ItemCounters{Likes: 0, Dislikes: 1}, listing.ItemCounters)

	record, err := env.local.Load(ctx, vote.ListingScope(models.CategoryMosque))
	require.NoError(t, err)
	assert.Equal(t, models.VoteRecord{"m1": models.VoteDislike}, record)

	out = env.run(t, "vote", "mosque", "m1", "dislike")
	assert.Contains(t, out, "Vote removed from m1")
	env.waitUnlocked(t, "masjidVotes", "m1")

	listing, err = env.remote.GetListing(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.ItemCounters{}, listing.ItemCounters)

	record, err = env.local.Load(ctx, "masjidVotes")
	require.NoError(t, err)
	assert.Empty(t, record)
}

func TestCli_VoteRejectedWhileLocked(t *testing.T) {
	env := newTestEnv(t, time.Hour)
	ctx := context.Background()
	env.run(t, "register")

	env.run(t, "vote", "mosque", "m1", "like")
	out := env.run(t, "vote", "mosque", "m1", "dislike")
	assert.Contains(t, out, "still being processed")

	listing, err := env.remote.GetListing(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, models.ItemCounters{Likes: 1}, listing.ItemCounters)
}

func TestCli_VoteUnknownItemIsNotRecorded(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()
	env.run(t, "register")

	out := env.run(t, "vote", "mosque", "missing", "like")
	assert.Contains(t, out, "Vote was not recorded")
	assert.Contains(t, out, api.ErrItemNotFound.Error())

	record, err := env.local.Load(ctx, "masjidVotes")
	require.NoError(t, err)
	assert.Empty(t, record)
}

func TestCli_MenuVote(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()
	env.run(t, "register")

	out := env.run(t, "vote", "menu", "rest-1", "dish-2", "like")
	assert.Contains(t, out, "Voted like")
	env.waitUnlocked(t, "restaurantMenuVotes-rest-1", "dish-2")

	record, err := env.local.Load(ctx, "restaurantMenuVotes-rest-1")
	require.NoError(t, err)
	assert.Equal(t, models.VoteRecord{"dish-2": models.VoteLike}, record)

	out = env.run(t, "menu", "rest-1")
	assert.Contains(t, out, "Menu of Halal Corner:")
	assert.Contains(t, out, "1. Biryani (👍 0 / 👎 0)")
	assert.Contains(t, out, "2. Samosa 👍 (👍 1 / 👎 0)")

	out = env.run(t, "featured")
	assert.Contains(t, out, "1. Samosa at Halal Corner 👍 1")
	assert.Contains(t, out, "No liked places yet.")

	out = env.run(t, "votes")
	assert.Contains(t, out, "restaurantMenuVotes-rest-1")

	out = env.run(t, "votes", "restaurantMenuVotes-rest-1")
	assert.Contains(t, out, "dish-2: like 👍")
}

func TestCli_ShowAndMenu(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()

	out := env.run(t, "show", "rest-1")
	assert.Contains(t, out, "=== Halal Corner ===")
	assert.Contains(t, out, "Category:    restaurant")
	assert.Contains(t, out, "Biryani")

	err := env.cli.Run(ctx, "show", []string{"missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrItemNotFound)

	err = env.cli.Run(ctx, "menu", []string{"m1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a restaurant")
}

func TestCli_ListValidation(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()

	assert.Error(t, env.cli.Run(ctx, "list", nil))
	assert.Error(t, env.cli.Run(ctx, "list", []string{"bakery"}))

	out := env.run(t, "list", "education")
	assert.Contains(t, out, "No listings found.")
}

func TestCli_CampaignsAndClick(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, env.remote.CreateCampaign(ctx, &models.Campaign{
		ID:        "c1",
		Title:     "Community Iftar",
		Category:  models.CampaignEvent,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-01",
		Organizer: "Central Masjid",
	}))

	out := env.run(t, "campaigns", "event")
	assert.Contains(t, out, "1. Community Iftar")
	assert.Contains(t, out, "By:    Central Masjid")

	out = env.run(t, "campaigns", "promotion")
	assert.Contains(t, out, "No promotions found.")

	assert.Error(t, env.cli.Run(ctx, "campaigns", []string{"party"}))

	assert.Contains(t, env.run(t, "click", "Halal", "Food"), "Halal Food: 1 clicks")
	assert.Contains(t, env.run(t, "click", "Halal", "Food"), "Halal Food: 2 clicks")
}

func TestCli_ReportFlags(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()
	env.run(t, "register")

	out := env.run(t, "report",
		"--name", "Aisha",
		"--email", "aisha@example.com",
		"--category", "Complaints",
		"--description", "Wrong opening hours")
	assert.Contains(t, out, "Report submitted")

	locked, err := env.local.GetLockedEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aisha@example.com", locked)

	// Другой email после первого обращения запрещен
	err = env.cli.Run(ctx, "report", []string{
		"--name", "Aisha",
		"--email", "other@example.com",
		"--category", "Complaints",
		"--description", "Again",
	})
	assert.ErrorIs(t, err, storage.ErrEmailLocked)

	out = env.run(t, "report",
		"--name", "Aisha",
		"--category", "2",
		"--description", "Is there parking?")
	assert.Contains(t, out, "Using email aisha@example.com")

	reports, err := env.local.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Inquiries / Questions", reports[0].Category)

	out = env.run(t, "reports")
	assert.Contains(t, out, reports[0].ID)
	assert.Contains(t, out, reports[1].ID)

	out = env.run(t, "report", "delete", reports[1].ID)
	assert.Contains(t, out, "Report deleted")

	err = env.cli.Run(ctx, "report", []string{"delete", reports[1].ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	reports, err = env.local.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

// Удаление последнего отчета освобождает email для следующего обращения
func TestCli_ReportDeleteUnlocksEmail(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()
	env.run(t, "register")

	env.run(t, "report",
		"--name", "A",
		"--email", "a@example.com",
		"--category", "Complaints",
		"--description", "first")
	env.run(t, "report",
		"--name", "A",
		"--category", "Complaints",
		"--description", "second")

	reports, err := env.local.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Пока остается хотя бы один отчет, email закреплен
	env.run(t, "report", "delete", reports[0].ID)
	locked, err := env.local.GetLockedEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", locked)

	env.run(t, "report", "delete", reports[1].ID)
	locked, err = env.local.GetLockedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, locked)

	out := env.run(t, "report",
		"--name", "B",
		"--email", "b@example.com",
		"--category", "Complaints",
		"--description", "third")
	assert.Contains(t, out, "Report submitted")

	locked, err = env.local.GetLockedEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", locked)
}

func TestCli_ReportValidation(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()
	env.run(t, "register")

	tests := []struct {
		name    string
		wantErr string
		args    []string
	}{
		{
			name:    "missing name without terminal",
			args:    []string{"--email", "a@example.com", "--category", "Complaints", "--description", "x"},
			wantErr: "missing --name",
		},
		{
			name:    "invalid email",
			args:    []string{"--name", "A", "--email", "not-an-email", "--category", "Complaints", "--description", "x"},
			wantErr: "invalid email",
		},
		{
			name:    "unknown category",
			args:    []string{"--name", "A", "--email", "a@example.com", "--category", "Spam", "--description", "x"},
			wantErr: "unknown report category",
		},
		{
			name:    "blank description",
			args:    []string{"--name", "A", "--email", "a@example.com", "--category", "Complaints", "--description", "   "},
			wantErr: "missing --description",
		},
		{
			name:    "unknown flag",
			args:    []string{"--nickname", "A"},
			wantErr: "invalid report arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.cli.Run(ctx, "report", tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	locked, err := env.local.GetLockedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, locked)
}

func TestCli_ReportInteractive(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	ctx := context.Background()
	env.run(t, "register")

	answers := map[string]string{
		"Name: ":           "Omar",
		"Email: ":          "omar@example.com",
		"Category: ":       "5",
		"Please specify: ": "Parking",
		"Description: ":    "No parking signs near the masjid",
	}
	mockIO := &iocli.IOMock{
		IsInteractiveFunc: func() bool { return true },
		PrintlnFunc:       func(a ...any) {},
		PrintfFunc:        func(format string, a ...any) {},
		ReadInputFunc: func(prompt string) (string, error) {
			answer, ok := answers[prompt]
			require.True(t, ok, "unexpected prompt %q", prompt)
			return answer, nil
		},
	}
	env.cli.io = mockIO

	require.NoError(t, env.cli.Run(ctx, "report", nil))

	assert.Len(t, mockIO.ReadInputCalls(), len(answers))

	reports, err := env.local.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Others: Parking", reports[0].Category)

	// Список категорий выводится перед вопросом о категории
	var printed []string
	for _, call := range mockIO.PrintfCalls() {
		if call.Format == "  %d. %s\n" {
			printed = append(printed, call.A[1].(string))
		}
	}
	assert.Equal(t, reportCategoryChoices(), printed)
}

func TestCli_UnknownCommand(t *testing.T) {
	env := newTestEnv(t, time.Millisecond)
	err := env.cli.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

// Сбой сервера при смене голоса не меняет локальный выбор
func TestCli_VoteServerFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Internal Server Error","message":"database is locked"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	ctx := context.Background()
	local, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer func() { _ = local.Close() }()

	require.NoError(t, local.SaveDevice(ctx, &storage.DeviceData{DeviceID: "d1", Token: "t1"}))
	require.NoError(t, local.Save(ctx, "communityVotes", models.VoteRecord{"g1": models.VoteLike}))

	out := &bytes.Buffer{}
	c := New(iocli.NewStdioWith(strings.NewReader(""), out), api.NewClient(ts.URL), local, discardLogger(), time.Millisecond)

	require.NoError(t, c.Run(ctx, "vote", []string{"community", "g1", "dislike"}))
	assert.Contains(t, out.String(), "Vote was not recorded")
	assert.Contains(t, out.String(), "server error (500)")

	record, err := local.Load(ctx, "communityVotes")
	require.NoError(t, err)
	assert.Equal(t, models.VoteRecord{"g1": models.VoteLike}, record)
}
