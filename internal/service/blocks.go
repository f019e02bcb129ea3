package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/directory-service/internal/models"
	"github.com/pribylovaa/directory-service/internal/storage"
	"github.com/pribylovaa/directory-service/pkg/log"
)

// BlockUser создаёт направленное ребро блокировки callerID -> targetID.
//
// Поведение:
//   - блокировка самого себя — ErrSelfBlock;
//   - повторная блокировка того же пользователя — ErrAlreadyBlocked
//     (предпроверка плюс уникальный индекс пары на случай гонки);
//   - несуществующий или удалённый target — ErrNotFound;
//   - в ребро снимается снапшот имени/фамилии/username цели на момент
//     блокировки.
func (s *Service) BlockUser(ctx context.Context, callerID, targetID string) error {
	const op = "service/blocks/BlockUser"

	lg := log.From(ctx).With("op", op, "caller_id", callerID, "target_id", targetID)

	if strings.TrimSpace(callerID) == "" || strings.TrimSpace(targetID) == "" {
		lg.Warn("invalid argument: empty id")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if callerID == targetID {
		lg.Warn("self-block rejected")

		return fmt.Errorf("%s: %w", op, ErrSelfBlock)
	}

	if _, err := s.blocks.BlockByIDs(ctx, callerID, targetID); err == nil {
		lg.Warn("user already blocked")

		return fmt.Errorf("%s: %w", op, ErrAlreadyBlocked)
	} else if !errors.Is(err, storage.ErrNotFound) {
		lg.Error("storage error on BlockByIDs", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	target, err := s.users.UserByID(ctx, targetID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("target user not found")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	block := &models.BlockRelationship{
		BlockedByUserID: callerID,
		BlockedUserID:   targetID,
		Name:            target.Name,
		Surname:         target.Surname,
		Username:        target.Username,
		BlockedAt:       time.Now().UTC().Unix(),
	}

	if err := s.blocks.CreateBlock(ctx, block); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("user already blocked (lost creation race)")

			return fmt.Errorf("%s: %w", op, ErrAlreadyBlocked)
		default:
			lg.Error("storage error on CreateBlock", "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// UnblockUser снимает ребро блокировки callerID -> targetID.
//
// Поведение:
//   - разблокировка самого себя — ErrSelfUnblock;
//   - отсутствие ребра — ErrNotBlocked;
//   - снимается только собственное ребро: встречная блокировка
//     (targetID -> callerID) не затрагивается.
func (s *Service) UnblockUser(ctx context.Context, callerID, targetID string) error {
	const op = "service/blocks/UnblockUser"

	lg := log.From(ctx).With("op", op, "caller_id", callerID, "target_id", targetID)

	if strings.TrimSpace(callerID) == "" || strings.TrimSpace(targetID) == "" {
		lg.Warn("invalid argument: empty id")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if callerID == targetID {
		lg.Warn("self-unblock rejected")

		return fmt.Errorf("%s: %w", op, ErrSelfUnblock)
	}

	if _, err := s.blocks.BlockByIDs(ctx, callerID, targetID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("block relationship not found")

			return fmt.Errorf("%s: %w", op, ErrNotBlocked)
		default:
			lg.Error("storage error on BlockByIDs", "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if err := s.blocks.DeleteBlock(ctx, callerID, targetID); err != nil {
		lg.Error("storage error on DeleteBlock", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}
