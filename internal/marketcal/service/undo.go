package service

import (
	"context"
	"errors"
	"log"
	"time"

	"marketcal/internal/marketcal/model"
	"marketcal/internal/marketcal/repository"

	"github.com/google/uuid"
)

// Undo restores the activity to the snapshot stored on one history entry.
// It re-checks authorization against the current calendar, never touches
// existing history, and appends a fresh record describing the restore.
//
// Undo is not an inverse of arbitrary-depth history: running it twice on the
// same entry re-applies the same snapshot. Edits made between the original
// mutation and the undo are overwritten, last write wins.
func (s *Service) Undo(ctx context.Context, p model.Principal, historyID string) (*model.Activity, error) {
	if p.ID == "" {
		return nil, ErrUnauthorized
	}

	// 1. Look up the entry.
	entry, err := s.History.GetHistoryEntry(ctx, historyID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	// 2. Re-authorize for edit against current state. The activity row may be
	// gone (that is what undo of a delete is for), so the check runs against
	// the owning calendar from the snapshot when the row is absent.
	if err := s.authorizeUndo(ctx, p, entry); err != nil {
		return nil, err
	}

	// 3. The very first created entry carries no snapshot.
	if entry.PreviousState == nil {
		return nil, ErrInvalid
	}

	restored := *entry.PreviousState
	now := time.Now()

	// 4. Branch on the recorded action and the current row. Undoing a delete
	// re-inserts the snapshot under its original id; if the row is already
	// back (the entry was undone before), the same snapshot is re-applied as
	// an overwrite so the operation stays idempotent in effect.
	if entry.Action == model.HistoryDeleted {
		done, err := s.undoDelete(ctx, p, entry, &restored, now)
		if err != nil {
			return nil, err
		}
		if done {
			log.Printf("Audit: Activity Restored. Caller=%s, Activity=%s, HistoryEntry=%s, UndoneAction=%s",
				p.ID, restored.ID, entry.ID, entry.Action)
			return &restored, nil
		}
	}

	restored.UpdatedAt = now
	newEntry := &model.ActivityHistory{
		ID:            uuid.NewString(),
		ActivityID:    restored.ID,
		UserID:        p.ID,
		Action:        model.HistoryUpdated,
		Changes:       model.UndoneMarker(entry.Action),
		PreviousState: entry.PreviousState,
		CreatedAt:     now,
	}
	if err := s.Store.OverwriteActivityWithHistory(ctx, &restored, newEntry); err != nil {
		return nil, mapStoreErr(err)
	}

	log.Printf("Audit: Activity Restored. Caller=%s, Activity=%s, HistoryEntry=%s, UndoneAction=%s",
		p.ID, restored.ID, entry.ID, entry.Action)
	return &restored, nil
}

// undoDelete re-inserts the snapshot when the row is still gone. It reports
// false, with no error, when the row already exists again and the caller
// should fall through to the overwrite path. Missing parents surface as a
// foreign key violation.
func (s *Service) undoDelete(ctx context.Context, p model.Principal, entry *model.ActivityHistory, restored *model.Activity, now time.Time) (bool, error) {
	_, err := s.Store.GetActivity(ctx, restored.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, mapStoreErr(err)
	}

	newEntry := &model.ActivityHistory{
		ID:            uuid.NewString(),
		ActivityID:    restored.ID,
		UserID:        p.ID,
		Action:        model.HistoryCreated,
		Changes:       model.UndoneMarker(model.HistoryDeleted),
		PreviousState: entry.PreviousState,
		CreatedAt:     now,
	}
	err = s.Store.RestoreActivityWithHistory(ctx, restored, newEntry)
	if err == nil {
		return true, nil
	}
	// A concurrent undo won the re-insert between the check and the write;
	// fall through and re-apply the snapshot as an overwrite.
	if errors.Is(err, repository.ErrDuplicate) {
		return false, nil
	}
	return false, mapStoreErr(err)
}

func (s *Service) authorizeUndo(ctx context.Context, p model.Principal, entry *model.ActivityHistory) error {
	err := s.authorize(ctx, p, model.ActionEdit, model.KindActivity, entry.ActivityID)
	if err == nil || err != ErrNotFound {
		return err
	}

	// Activity row deleted; fall back to the calendar recorded in the snapshot.
	if entry.PreviousState == nil {
		return ErrNotFound
	}
	return s.authorize(ctx, p, model.ActionEdit, model.KindCalendar, entry.PreviousState.CalendarID)
}
