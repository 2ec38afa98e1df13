package sharepoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	"github.com/nimbusworks/intranet_portal_app/internal/middleware"
	"github.com/nimbusworks/intranet_portal_app/internal/utils/mapping"
)

// pageSize caps list fetches. The lists behind the portal stay well under
// this; there is no cursor surface.
const pageSize = 5000

// listRepository is the shared base of every entity repository. The
// constructor performs no I/O; Open resolves and caches the site and list
// identifiers once for the lifetime of the instance, and every operation
// opens lazily.
type listRepository[T portsrepo.Record] struct {
	store    listStore
	listName string
	dict     mapping.Dictionary
	decode   func(id string, fields map[string]any) T

	// seedFields are the domain fields sent in phase (a) of Add, together
	// with seedDefaults for required enum columns. Everything else is
	// patched in phase (b) to keep poorly-typed optional columns from
	// rejecting the combined write.
	seedFields   []string
	seedDefaults map[string]any

	mu     sync.Mutex
	siteID string
	listID string
	opened bool
}

func newListRepository[T portsrepo.Record](
	store listStore,
	listName string,
	dict mapping.Dictionary,
	decode func(id string, fields map[string]any) T,
	seedFields []string,
	seedDefaults map[string]any,
) *listRepository[T] {
	return &listRepository[T]{
		store:        store,
		listName:     listName,
		dict:         dict,
		decode:       decode,
		seedFields:   seedFields,
		seedDefaults: seedDefaults,
	}
}

// Open resolves the backing site and list and runs the dictionary/schema
// mismatch diagnostics. Safe to call repeatedly; resolution happens once.
func (r *listRepository[T]) Open(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.opened {
		return nil
	}

	logger := middleware.GetLoggerFromCtx(ctx)

	siteID, err := r.store.ResolveSite(ctx)
	if err != nil {
		logger.Error("failed to resolve site",
			slog.String("list", r.listName),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: resolve site: %w", apperrors.ErrInitialization, err)
	}
	listID, err := r.store.ResolveList(ctx, siteID, r.listName)
	if err != nil {
		logger.Error("failed to resolve list",
			slog.String("list", r.listName),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: resolve list %q: %w", apperrors.ErrInitialization, r.listName, err)
	}
	r.siteID, r.listID, r.opened = siteID, listID, true

	// Schema mismatch is a diagnostic, never an error: a dictionary entry
	// with no live counterpart silently drops that field.
	if cols, err := r.store.ListColumns(ctx, siteID, listID); err == nil {
		live := make(map[string]bool, len(cols))
		for _, col := range cols {
			live[col.Name] = true
		}
		if missing := r.dict.MissingColumns(live); len(missing) > 0 {
			logger.Warn("schema mismatch: dictionary fields missing from live list",
				slog.String("list", r.listName),
				slog.Any("columns", missing))
		}
	} else {
		logger.Debug("column introspection unavailable, skipping schema check",
			slog.String("list", r.listName),
			slog.String("error", err.Error()))
	}
	return nil
}

// List fetches all active records visible to actor. Soft-deleted records
// are excluded; non-privileged actors only see records whose owner
// identity matches their email.
func (r *listRepository[T]) List(ctx context.Context, actor domain.Actor) ([]T, error) {
	if err := r.Open(ctx); err != nil {
		return nil, err
	}
	items, err := r.store.ListItems(ctx, r.siteID, r.listID, pageSize)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("list operation failed",
			slog.String("list", r.listName),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: list %q: %w", apperrors.ErrFetch, r.listName, err)
	}

	records := make([]T, 0, len(items))
	for _, item := range items {
		rec := r.decode(item.ID, item.Fields)
		if rec.Deleted() {
			continue
		}
		records = append(records, rec)
	}
	return domain.FilterVisible(records, actor), nil
}

// FindByID returns the record, soft-deleted or not. Not-found is a
// (nil, nil) return, never an error.
func (r *listRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := r.Open(ctx); err != nil {
		return nil, err
	}
	item, err := r.store.GetItem(ctx, r.siteID, r.listID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		middleware.GetLoggerFromCtx(ctx).Error("get operation failed",
			slog.String("list", r.listName),
			slog.String("item_id", id),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: get %q item %s: %w", apperrors.ErrFetch, r.listName, id, err)
	}
	rec := r.decode(item.ID, item.Fields)
	return &rec, nil
}

// Add creates a record in two phases: a minimal seed write (identifying
// title field, required enum defaults, soft-delete flag forced false),
// then a patch with the remaining fields, then a re-fetch. A phase-b
// failure leaves the seed record live in the store; the overall call still
// fails with ErrWrite so the caller sees the original diagnostics.
func (r *listRepository[T]) Add(ctx context.Context, record map[string]any) (*T, error) {
	if err := r.Open(ctx); err != nil {
		return nil, err
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	seed := make(map[string]any, len(r.seedFields)+len(r.seedDefaults)+1)
	for key, value := range r.seedDefaults {
		// Caller-supplied values win over the enum defaults.
		if v, ok := record[key]; ok {
			value = v
		}
		seed[key] = value
	}
	for _, key := range r.seedFields {
		if v, ok := record[key]; ok {
			seed[key] = v
		}
	}
	seed["is_deleted"] = false

	rest := make(map[string]any, len(record))
	for key, value := range record {
		if _, inSeed := seed[key]; !inSeed {
			rest[key] = value
		}
	}

	created, err := r.store.CreateItem(ctx, r.siteID, r.listID, r.dict.ToExternal(seed))
	if err != nil {
		logger.Error("create operation failed",
			slog.String("list", r.listName),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: create in %q: %w", apperrors.ErrWrite, r.listName, err)
	}

	if payload := r.dict.ToExternal(rest); len(payload) > 0 {
		if err := r.store.UpdateItemFields(ctx, r.siteID, r.listID, created.ID, payload); err != nil {
			// No compensating delete: the partially written item stays
			// live and the error carries the new id for repair.
			logger.Error("post-create patch failed, seed record remains",
				slog.String("list", r.listName),
				slog.String("item_id", created.ID),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: patch new item %s in %q: %w", apperrors.ErrWrite, created.ID, r.listName, err)
		}
	}

	return r.refetch(ctx, created.ID)
}

// Update patches only the fields present in record, then re-fetches.
func (r *listRepository[T]) Update(ctx context.Context, id string, record map[string]any) (*T, error) {
	if err := r.Open(ctx); err != nil {
		return nil, err
	}
	payload := r.dict.ToExternal(record)
	if len(payload) > 0 {
		if err := r.store.UpdateItemFields(ctx, r.siteID, r.listID, id, payload); err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("update operation failed",
				slog.String("list", r.listName),
				slog.String("item_id", id),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: update item %s in %q: %w", apperrors.ErrWrite, id, r.listName, err)
		}
	}
	return r.refetch(ctx, id)
}

// SoftDelete sets the soft-delete triple in a single patch.
func (r *listRepository[T]) SoftDelete(ctx context.Context, id string, actorEmail string) error {
	_, err := r.Update(ctx, id, map[string]any{
		"is_deleted": true,
		"deleted_at": time.Now().UTC(),
		"deleted_by": actorEmail,
	})
	return err
}

// Restore clears the soft-delete triple. The timestamp and actor columns
// must be explicitly nulled; the outbound mapper would otherwise omit them.
func (r *listRepository[T]) Restore(ctx context.Context, id string) (*T, error) {
	if err := r.Open(ctx); err != nil {
		return nil, err
	}
	payload := r.dict.ToExternal(map[string]any{"is_deleted": false})
	for external, v := range r.dict.ClearValues("deleted_at", "deleted_by") {
		payload[external] = v
	}
	if err := r.store.UpdateItemFields(ctx, r.siteID, r.listID, id, payload); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("restore operation failed",
			slog.String("list", r.listName),
			slog.String("item_id", id),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: restore item %s in %q: %w", apperrors.ErrWrite, id, r.listName, err)
	}
	return r.refetch(ctx, id)
}

// HardDelete permanently removes the item. No soft-delete check; callers
// gate this behind privilege checks.
func (r *listRepository[T]) HardDelete(ctx context.Context, id string) error {
	if err := r.Open(ctx); err != nil {
		return err
	}
	if err := r.store.DeleteItem(ctx, r.siteID, r.listID, id); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("hard delete failed",
			slog.String("list", r.listName),
			slog.String("item_id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: delete item %s in %q: %w", apperrors.ErrWrite, id, r.listName, err)
	}
	return nil
}

func (r *listRepository[T]) refetch(ctx context.Context, id string) (*T, error) {
	item, err := r.store.GetItem(ctx, r.siteID, r.listID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: re-fetch item %s in %q: %w", apperrors.ErrFetch, id, r.listName, err)
	}
	rec := r.decode(item.ID, item.Fields)
	return &rec, nil
}
