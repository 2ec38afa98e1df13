package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
)

// entityCRUD carries the flows shared by every list-backed entity:
// visibility on reads, owner-or-privileged guards on writes, admin-only
// purge. Entity facades embed it and expose their named operations on top.
type entityCRUD[T portsrepo.Record] struct {
	BaseService
	repo portsrepo.CRUDRepository[T]
	kind string
}

func (s *entityCRUD[T]) list(ctx context.Context, actor domain.Actor) ([]T, error) {
	return s.repo.List(ctx, actor)
}

// get returns a live record visible to the actor. Records the actor may
// not see report ErrNotFound, same as records that do not exist, so
// reads never reveal the existence of another user's data.
func (s *entityCRUD[T]) get(ctx context.Context, actor domain.Actor, id string) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || (*rec).Deleted() || !s.visible(actor, rec) {
		return nil, fmt.Errorf("%s %s: %w", s.kind, id, apperrors.ErrNotFound)
	}
	return rec, nil
}

func (s *entityCRUD[T]) create(ctx context.Context, record map[string]any) (*T, error) {
	return s.repo.Add(ctx, record)
}

// update patches a live record after an owner-or-privileged check.
func (s *entityCRUD[T]) update(ctx context.Context, actor domain.Actor, id string, record map[string]any) (*T, error) {
	rec, err := s.fetchForWrite(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if (*rec).Deleted() {
		return nil, fmt.Errorf("%s %s: %w", s.kind, id, apperrors.ErrNotFound)
	}
	if len(record) == 0 {
		return rec, nil
	}
	return s.repo.Update(ctx, id, record)
}

func (s *entityCRUD[T]) softDelete(ctx context.Context, actor domain.Actor, id string) error {
	rec, err := s.fetchForWrite(ctx, actor, id)
	if err != nil {
		return err
	}
	if (*rec).Deleted() {
		return fmt.Errorf("%s %s: %w", s.kind, id, apperrors.ErrNotFound)
	}
	return s.repo.SoftDelete(ctx, id, actor.Email)
}

func (s *entityCRUD[T]) restore(ctx context.Context, actor domain.Actor, id string) (*T, error) {
	if _, err := s.fetchForWrite(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.repo.Restore(ctx, id)
}

func (s *entityCRUD[T]) purge(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.RequireAdmin(ctx, actor, "purge "+s.kind); err != nil {
		return err
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("%s %s: %w", s.kind, id, apperrors.ErrNotFound)
	}
	return s.repo.HardDelete(ctx, id)
}

// fetchForWrite loads a record, soft-deleted included, and enforces the
// owner-or-privileged rule for mutation.
func (s *entityCRUD[T]) fetchForWrite(ctx context.Context, actor domain.Actor, id string) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%s %s: %w", s.kind, id, apperrors.ErrNotFound)
	}
	if !s.visible(actor, rec) {
		return nil, fmt.Errorf("%s %s: %w", s.kind, id, apperrors.ErrForbidden)
	}
	return rec, nil
}

func (s *entityCRUD[T]) visible(actor domain.Actor, rec *T) bool {
	return actor.Privileged() || strings.EqualFold((*rec).OwnerIdentity(), actor.Email)
}

// setIf adds key to the record when the pointer is present. Used to turn
// pointer-typed update requests into partial records.
func setIf[V any](record map[string]any, key string, v *V) {
	if v != nil {
		record[key] = *v
	}
}

// notFound wraps ErrNotFound with the entity kind and id.
func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, apperrors.ErrNotFound)
}
