// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/tomtom215/bytewise/internal/models"
)

// CreateSession allocates a new session ID and records its creation time.
func (s *Store) CreateSession(ctx context.Context) (string, error) {
	id := uuid.New().String()
	created := time.Now().UTC().Format(time.RFC3339)
	if err := s.setJSON(ctx, sessionKey(id, KeyCreated), KeyCreated, created); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	s.logger.Debug().Str("session_id", id).Msg("Session created")
	return id, nil
}

// SessionExists reports whether CreateSession produced id.
func (s *Store) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	var created string
	err := s.getJSON(ctx, sessionKey(sessionID, KeyCreated), KeyCreated, &created)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// DeleteSession removes every key stored for the session.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prefix := []byte(sessionKeyPrefix + sessionID + ":")
	if err := s.db.DropPrefix(prefix); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// LoadModelState returns the session's model state.
func (s *Store) LoadModelState(ctx context.Context, sessionID string) (*models.ModelState, error) {
	var st models.ModelState
	if err := s.getJSON(ctx, sessionKey(sessionID, KeyModelState), KeyModelState, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// SaveModelState replaces the session's model state.
func (s *Store) SaveModelState(ctx context.Context, sessionID string, st *models.ModelState) error {
	if st == nil {
		return errors.New("state: nil model state")
	}
	return s.setJSON(ctx, sessionKey(sessionID, KeyModelState), KeyModelState, st)
}

// DeleteModelState removes the session's model state. The next request
// starts a fresh model.
func (s *Store) DeleteModelState(ctx context.Context, sessionID string) error {
	return s.deleteKey(ctx, sessionKey(sessionID, KeyModelState), KeyModelState)
}

// LoadRestrictions returns the session's dietary restrictions.
func (s *Store) LoadRestrictions(ctx context.Context, sessionID string) ([]models.DietaryRestriction, error) {
	var out []models.DietaryRestriction
	if err := s.getJSON(ctx, sessionKey(sessionID, KeyDietaryRestrictions), KeyDietaryRestrictions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveRestrictions replaces the session's dietary restrictions.
func (s *Store) SaveRestrictions(ctx context.Context, sessionID string, restrictions []models.DietaryRestriction) error {
	if restrictions == nil {
		restrictions = []models.DietaryRestriction{}
	}
	return s.setJSON(ctx, sessionKey(sessionID, KeyDietaryRestrictions), KeyDietaryRestrictions, restrictions)
}

// LoadParameters returns the session's food parameters.
func (s *Store) LoadParameters(ctx context.Context, sessionID string) (*models.FoodParameters, error) {
	var p models.FoodParameters
	if err := s.getJSON(ctx, sessionKey(sessionID, KeyFoodParameters), KeyFoodParameters, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveParameters replaces the session's food parameters.
func (s *Store) SaveParameters(ctx context.Context, sessionID string, p *models.FoodParameters) error {
	if p == nil {
		p = &models.FoodParameters{}
	}
	return s.setJSON(ctx, sessionKey(sessionID, KeyFoodParameters), KeyFoodParameters, p)
}

// CountSessions returns the number of sessions created.
func (s *Store) CountSessions(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	suffix := ":" + KeyCreated
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(sessionKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			if strings.HasSuffix(string(key), suffix) {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}
