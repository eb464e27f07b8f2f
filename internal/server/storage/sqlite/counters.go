package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
)

// Имя колонки нельзя передать параметром, поэтому запросы заготовлены заранее.
// Условие в WHERE не дает счетчику уйти в минус даже при гонке: строка просто
// не обновляется, и это отличимо от успешного изменения.
var listingDeltaQueries = map[models.CounterField]string{
	models.FieldLikes: `
		UPDATE listings SET likes = likes + ?1
		WHERE id = ?2 AND likes + ?1 >= 0
		RETURNING likes, dislikes`,
	models.FieldDislikes: `
		UPDATE listings SET dislikes = dislikes + ?1
		WHERE id = ?2 AND dislikes + ?1 >= 0
		RETURNING likes, dislikes`,
}

var menuDeltaQueries = map[models.CounterField]string{
	models.FieldLikes: `
		UPDATE menu_items SET likes = likes + ?1
		WHERE restaurant_id = ?2 AND id = ?3 AND likes + ?1 >= 0
		RETURNING likes, dislikes`,
	models.FieldDislikes: `
		UPDATE menu_items SET dislikes = dislikes + ?1
		WHERE restaurant_id = ?2 AND id = ?3 AND dislikes + ?1 >= 0
		RETURNING likes, dislikes`,
}

const (
	listingCountersQuery = `SELECT likes, dislikes FROM listings WHERE id = ?`
	menuCountersQuery    = `SELECT likes, dislikes FROM menu_items WHERE restaurant_id = ? AND id = ?`
)

// ApplyListingDelta atomically adds delta to a listing counter clamped at zero
func (s *Storage) ApplyListingDelta(
	ctx context.Context,
	listingID string,
	field models.CounterField,
	delta int,
) (models.CounterUpdate, error) {
	query, err := deltaQuery(listingDeltaQueries, field, delta)
	if err != nil {
		return models.CounterUpdate{}, err
	}

	update, err := s.applyDelta(ctx, query, listingCountersQuery, []any{delta, listingID}, listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CounterUpdate{}, storage.ErrListingNotFound
		}
		return models.CounterUpdate{}, fmt.Errorf("failed to update listing counter: %w", err)
	}

	return update, nil
}

// ApplyMenuItemDelta atomically adds delta to a menu item counter clamped at zero
func (s *Storage) ApplyMenuItemDelta(
	ctx context.Context,
	restaurantID, menuItemID string,
	field models.CounterField,
	delta int,
) (models.CounterUpdate, error) {
	query, err := deltaQuery(menuDeltaQueries, field, delta)
	if err != nil {
		return models.CounterUpdate{}, err
	}

	update, err := s.applyDelta(ctx, query, menuCountersQuery,
		[]any{delta, restaurantID, menuItemID}, restaurantID, menuItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CounterUpdate{}, storage.ErrMenuItemNotFound
		}
		return models.CounterUpdate{}, fmt.Errorf("failed to update menu item counter: %w", err)
	}

	return update, nil
}

// applyDelta выполняет обновление; если строка не обновилась, читает текущие
// значения, чтобы отличить счетчик на нуле от отсутствующей записи.
// Для отсутствующей записи возвращает sql.ErrNoRows.
func (s *Storage) applyDelta(ctx context.Context, update, current string, updateArgs []any, keys ...any) (models.CounterUpdate, error) {
	var out models.CounterUpdate
	err := s.db.QueryRowContext(ctx, update, updateArgs...).Scan(&out.Likes, &out.Dislikes)
	if err == nil {
		out.Applied = true
		return out, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.CounterUpdate{}, err
	}

	if err := s.db.QueryRowContext(ctx, current, keys...).Scan(&out.Likes, &out.Dislikes); err != nil {
		return models.CounterUpdate{}, err
	}
	return out, nil
}

func deltaQuery(queries map[models.CounterField]string, field models.CounterField, delta int) (string, error) {
	if delta != 1 && delta != -1 {
		return "", fmt.Errorf("%w: delta %d", storage.ErrInvalidDelta, delta)
	}
	query, ok := queries[field]
	if !ok {
		return "", fmt.Errorf("%w: field %q", storage.ErrInvalidDelta, field)
	}
	return query, nil
}
