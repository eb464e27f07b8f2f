package vote

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/muslimguide/internal/models"
)

// DefaultCooldown время, в течение которого повторный голос за тот же элемент игнорируется
const DefaultCooldown = 500 * time.Millisecond

// Result describes what CastVote did.
type Result int

const (
	// ResultApplied голос учтен: счетчики обновлены, выбор сохранен
	ResultApplied Result = iota
	// ResultRejected элемент заблокирован предыдущей операцией, вызов проигнорирован
	ResultRejected
	// ResultFailed удаленный счетчик не обновился, локальный выбор не изменен
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultApplied:
		return "applied"
	case ResultRejected:
		return "rejected"
	case ResultFailed:
		return "failed"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Outcome is the result of a CastVote call. Choice is the item's choice after the
// call; Err holds the *SyncError when Result is ResultFailed.
type Outcome struct {
	Err    error
	Choice models.VoteChoice
	Result Result
}

// Config параметры Engine
type Config struct {
	// Lock общий lock; если nil, создается собственный.
	// Ключи в нем разделены по Scope.
	Lock *Lock
	// Scope ключ локального хранилища, например "masjidVotes"
	Scope string
	// Cooldown задержка снятия блокировки; 0 означает DefaultCooldown
	Cooldown time.Duration
}

// Engine reconciles this device's like/dislike choices for one scope with the remote
// counters. It is safe for concurrent use; operations on different items run
// independently while a second operation on the same item is dropped until the
// cooldown after the first one has passed.
type Engine struct {
	store     Store
	counters  CounterSync
	lock      *Lock
	logger    *slog.Logger
	afterFunc func(d time.Duration, f func())
	record    models.VoteRecord
	scope     string
	cooldown  time.Duration
	mu        sync.Mutex
	loaded    bool
}

// NewEngine creates a vote engine bound to cfg.Scope.
func NewEngine(cfg Config, store Store, counters CounterSync, logger *slog.Logger) *Engine {
	lock := cfg.Lock
	if lock == nil {
		lock = NewLock()
	}
	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		store:    store,
		counters: counters,
		lock:     lock,
		logger:   logger.With("scope", cfg.Scope),
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		scope:    cfg.Scope,
		cooldown: cooldown,
	}
}

// Scope returns the storage scope of the engine.
func (e *Engine) Scope() string {
	return e.scope
}

// IsLocked reports whether a vote on itemID is in flight or cooling down.
func (e *Engine) IsLocked(itemID string) bool {
	return e.lock.IsLocked(e.lockKey(itemID))
}

// CastVote toggles or switches this device's vote on itemID.
//
// A call on a locked item is ignored and reports ResultRejected. Counter deltas are
// sent before the local record is touched; if any of them fails the local choice is
// left as it was and ResultFailed is reported. Either way the item is unlocked one
// cooldown after the call returns.
//
// The returned error is non-nil only for invalid arguments.
func (e *Engine) CastVote(ctx context.Context, itemID string, requested models.VoteChoice) (Outcome, error) {
	if itemID == "" {
		return Outcome{}, ErrEmptyItemID
	}
	if requested != models.VoteLike && requested != models.VoteDislike {
		return Outcome{}, ErrInvalidChoice
	}

	if !e.lock.TryAcquire(e.lockKey(itemID)) {
		e.logger.Debug("Vote ignored, item is locked", "item_id", itemID)
		return Outcome{Result: ResultRejected, Choice: e.Choice(ctx, itemID)}, nil
	}
	defer e.scheduleRelease(itemID)

	current := e.Choice(ctx, itemID)
	next, deltas := Transition(current, requested)

	applied := make([]Delta, 0, len(deltas))
	for _, d := range deltas {
		changed, err := e.counters.ApplyDelta(ctx, itemID, d.Field, d.Amount)
		if err != nil {
			syncErr := &SyncError{ItemID: itemID, Field: d.Field, Delta: d.Amount, Err: err}
			e.logger.Error("Failed to update remote counter",
				"item_id", itemID,
				"field", d.Field,
				"delta", d.Amount,
				"error", err)
			e.compensate(ctx, itemID, applied)
			return Outcome{Result: ResultFailed, Choice: current, Err: syncErr}, nil
		}
		// Уменьшение, упершееся в ноль, ничего не изменило и откатывать его нельзя
		if changed {
			applied = append(applied, d)
		}
	}

	e.commit(ctx, itemID, next)

	e.logger.Debug("Vote applied",
		"item_id", itemID,
		"from", string(current),
		"to", string(next))

	return Outcome{Result: ResultApplied, Choice: next}, nil
}

// Choice returns the stored choice for itemID.
func (e *Engine) Choice(ctx context.Context, itemID string) models.VoteChoice {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loadLocked(ctx)
	return e.record.Get(itemID)
}

// Record returns a copy of the whole record of the scope.
func (e *Engine) Record(ctx context.Context) models.VoteRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loadLocked(ctx)
	return e.record.Clone()
}

// loadLocked читает запись из хранилища один раз. Ошибка чтения трактуется как
// отсутствие голосов. Вызывается под e.mu.
func (e *Engine) loadLocked(ctx context.Context) {
	if e.loaded {
		return
	}

	record, err := e.store.Load(ctx, e.scope)
	if err != nil {
		e.logger.Warn("Failed to load votes, starting with empty record", "error", err)
		record = nil
	}
	if record == nil {
		record = make(models.VoteRecord)
	}

	e.record = record
	e.loaded = true
}

// commit обновляет выбор в памяти и сохраняет запись целиком.
// Ошибка записи только логируется.
func (e *Engine) commit(ctx context.Context, itemID string, next models.VoteChoice) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loadLocked(ctx)
	if next == models.VoteNone {
		delete(e.record, itemID)
	} else {
		e.record[itemID] = next
	}

	if err := e.store.Save(ctx, e.scope, e.record.Clone()); err != nil {
		e.logger.Warn("Failed to save votes", "item_id", itemID, "error", err)
	}
}

// compensate откатывает уже примененные дельты, если последующая не прошла
// (например, при смене like на dislike упал второй запрос).
func (e *Engine) compensate(ctx context.Context, itemID string, applied []Delta) {
	for i := len(applied) - 1; i >= 0; i-- {
		d := applied[i]
		if _, err := e.counters.ApplyDelta(ctx, itemID, d.Field, -d.Amount); err != nil {
			e.logger.Error("Failed to roll back remote counter",
				"item_id", itemID,
				"field", d.Field,
				"delta", -d.Amount,
				"error", err)
		}
	}
}

func (e *Engine) scheduleRelease(itemID string) {
	key := e.lockKey(itemID)
	e.afterFunc(e.cooldown, func() {
		e.lock.Release(key)
	})
}

func (e *Engine) lockKey(itemID string) string {
	return LockKey(e.scope, itemID)
}

// LockKey returns the key under which an engine of scope locks itemID.
// One Lock may serve several scopes whose item ids overlap.
func LockKey(scope, itemID string) string {
	return scope + "/" + itemID
}
