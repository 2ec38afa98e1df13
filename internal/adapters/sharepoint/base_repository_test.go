package sharepoint

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	spclient "github.com/nimbusworks/intranet_portal_app/pkg/sharepoint"
)

// fakeStore is an in-memory listStore. It records the payloads of write
// calls so tests can assert on exactly what would hit the wire.
type fakeStore struct {
	mu     sync.Mutex
	nextID int
	items  map[string]map[string]any

	resolveListErr error
	patchErr       error

	createPayloads []map[string]any
	patchPayloads  []map[string]any
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[string]map[string]any{}}
}

func (f *fakeStore) ResolveSite(ctx context.Context) (string, error) {
	return "site-1", nil
}

func (f *fakeStore) ResolveList(ctx context.Context, siteID, listName string) (string, error) {
	if f.resolveListErr != nil {
		return "", f.resolveListErr
	}
	return "list-" + listName, nil
}

func (f *fakeStore) ListItems(ctx context.Context, siteID, listID string, top int) ([]spclient.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]spclient.Item, 0, len(f.items))
	for id, fields := range f.items {
		items = append(items, spclient.Item{ID: id, Fields: copyFields(fields)})
	}
	return items, nil
}

func (f *fakeStore) GetItem(ctx context.Context, siteID, listID, itemID string) (*spclient.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fields, ok := f.items[itemID]
	if !ok {
		return nil, apperrors.NewStatusError(apperrors.ErrNotFound, 404, "")
	}
	return &spclient.Item{ID: itemID, Fields: copyFields(fields)}, nil
}

func (f *fakeStore) CreateItem(ctx context.Context, siteID, listID string, fields map[string]any) (*spclient.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := strconv.Itoa(f.nextID)
	f.items[id] = copyFields(fields)
	f.createPayloads = append(f.createPayloads, copyFields(fields))
	return &spclient.Item{ID: id, Fields: copyFields(fields)}, nil
}

func (f *fakeStore) UpdateItemFields(ctx context.Context, siteID, listID, itemID string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.patchErr != nil {
		return f.patchErr
	}
	existing, ok := f.items[itemID]
	if !ok {
		return apperrors.NewStatusError(apperrors.ErrNotFound, 404, "")
	}
	for k, v := range fields {
		if v == nil {
			delete(existing, k)
			continue
		}
		existing[k] = v
	}
	f.patchPayloads = append(f.patchPayloads, copyFields(fields))
	return nil
}

func (f *fakeStore) DeleteItem(ctx context.Context, siteID, listID, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[itemID]; !ok {
		return apperrors.NewStatusError(apperrors.ErrNotFound, 404, "")
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakeStore) ListColumns(ctx context.Context, siteID, listID string) ([]spclient.Column, error) {
	return nil, errors.New("column introspection disabled in tests")
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func (f *fakeStore) put(id string, fields map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[id] = fields
}

var (
	admin  = domain.Actor{Email: "admin@nimbusworks.example", Role: domain.RoleAdmin}
	member = domain.Actor{Email: "jordan@nimbusworks.example", Role: domain.RoleMember}
)

func TestList_ExcludesSoftDeletedRecords(t *testing.T) {
	store := newFakeStore()
	store.put("1", map[string]any{"Title": "Laptop", "IsDeleted": false})
	store.put("2", map[string]any{"Title": "Old Phone", "IsDeleted": true})
	repo := NewAssetRepository(store, "Assets")

	assets, err := repo.List(context.Background(), admin)

	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "Laptop", assets[0].Name)
}

func TestList_VisibilityScenarios(t *testing.T) {
	store := newFakeStore()
	store.put("1", map[string]any{"Title": "Laptop", "AssignedToEmail": "JORDAN@nimbusworks.example", "IsDeleted": false})
	store.put("2", map[string]any{"Title": "Monitor", "AssignedToEmail": "dana@nimbusworks.example", "IsDeleted": false})
	store.put("3", map[string]any{"Title": "Spare Desk", "IsDeleted": false})
	repo := NewAssetRepository(store, "Assets")

	t.Run("privileged actor sees everything", func(t *testing.T) {
		assets, err := repo.List(context.Background(), admin)
		require.NoError(t, err)
		assert.Len(t, assets, 3)
	})

	t.Run("member sees own records only, case-insensitively", func(t *testing.T) {
		assets, err := repo.List(context.Background(), member)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, "Laptop", assets[0].Name)
	})
}

func TestFindByID_MissingIsNilNil(t *testing.T) {
	repo := NewAssetRepository(newFakeStore(), "Assets")

	asset, err := repo.FindByID(context.Background(), "999")

	assert.NoError(t, err)
	assert.Nil(t, asset)
}

func TestFindByID_IncludesSoftDeleted(t *testing.T) {
	store := newFakeStore()
	store.put("7", map[string]any{"Title": "Retired Server", "IsDeleted": true})
	repo := NewAssetRepository(store, "Assets")

	asset, err := repo.FindByID(context.Background(), "7")

	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.True(t, asset.Deleted())
}

func TestAdd_TwoPhaseWrite(t *testing.T) {
	store := newFakeStore()
	repo := NewAssetRepository(store, "Assets")

	asset, err := repo.Add(context.Background(), map[string]any{
		"name":     "Standing Desk",
		"category": "Furniture",
		"cost":     499.0,
	})

	require.NoError(t, err)
	require.Len(t, store.createPayloads, 1)
	seed := store.createPayloads[0]
	assert.Equal(t, "Standing Desk", seed["Title"])
	assert.Equal(t, "Available", seed["AssetStatus"], "seed carries the required enum default")
	assert.Equal(t, false, seed["IsDeleted"], "soft-delete flag is forced false at creation")
	assert.NotContains(t, seed, "Category", "non-seed fields wait for phase b")

	require.Len(t, store.patchPayloads, 1)
	patch := store.patchPayloads[0]
	assert.Equal(t, "Furniture", patch["Category"])
	assert.Equal(t, 499.0, patch["Cost"])
	assert.NotContains(t, patch, "Title")

	assert.Equal(t, "Standing Desk", asset.Name)
	assert.Equal(t, "Furniture", asset.Category)
	assert.Equal(t, domain.AssetStatusAvailable, asset.Status)
}

func TestAdd_CallerStatusOverridesSeedDefault(t *testing.T) {
	store := newFakeStore()
	repo := NewAssetRepository(store, "Assets")

	asset, err := repo.Add(context.Background(), map[string]any{
		"name":   "Projector",
		"status": "InRepair",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AssetStatus("InRepair"), asset.Status)
}

func TestAdd_PhaseBFailureLeavesSeedRecord(t *testing.T) {
	store := newFakeStore()
	store.patchErr = apperrors.NewStatusError(errors.New("column rejected value"), 400, "bad request")
	repo := NewAssetRepository(store, "Assets")

	_, err := repo.Add(context.Background(), map[string]any{
		"name":  "Tablet",
		"notes": "phase b payload",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrWrite)
	// The seed record is not rolled back.
	require.Len(t, store.items, 1)
	for _, fields := range store.items {
		assert.Equal(t, "Tablet", fields["Title"])
		assert.NotContains(t, fields, "Notes")
	}
}

func TestUpdate_PatchesOnlyPresentFields(t *testing.T) {
	store := newFakeStore()
	store.put("4", map[string]any{"Title": "Laptop", "Category": "IT", "IsDeleted": false})
	repo := NewAssetRepository(store, "Assets")

	asset, err := repo.Update(context.Background(), "4", map[string]any{"category": "Hardware"})

	require.NoError(t, err)
	require.Len(t, store.patchPayloads, 1)
	assert.Equal(t, map[string]any{"Category": "Hardware"}, store.patchPayloads[0])
	assert.Equal(t, "Laptop", asset.Name, "untouched fields survive")
	assert.Equal(t, "Hardware", asset.Category)
}

func TestSoftDelete_SetsTriple(t *testing.T) {
	store := newFakeStore()
	store.put("5", map[string]any{"Title": "Laptop", "IsDeleted": false})
	repo := NewAssetRepository(store, "Assets")

	err := repo.SoftDelete(context.Background(), "5", "admin@nimbusworks.example")

	require.NoError(t, err)
	require.Len(t, store.patchPayloads, 1)
	patch := store.patchPayloads[0]
	assert.Equal(t, true, patch["IsDeleted"])
	assert.Equal(t, "admin@nimbusworks.example", patch["DeletedBy"])
	assert.NotEmpty(t, patch["DeletedAt"])
}

func TestRestore_ClearsTripleWithExplicitNulls(t *testing.T) {
	store := newFakeStore()
	store.put("6", map[string]any{
		"Title":     "Laptop",
		"IsDeleted": true,
		"DeletedAt": "2026-01-10T08:00:00Z",
		"DeletedBy": "admin@nimbusworks.example",
	})
	repo := NewAssetRepository(store, "Assets")

	asset, err := repo.Restore(context.Background(), "6")

	require.NoError(t, err)
	require.Len(t, store.patchPayloads, 1)
	patch := store.patchPayloads[0]
	assert.Equal(t, false, patch["IsDeleted"])
	v, present := patch["DeletedAt"]
	assert.True(t, present, "timestamp must be explicitly nulled, not omitted")
	assert.Nil(t, v)
	v, present = patch["DeletedBy"]
	assert.True(t, present)
	assert.Nil(t, v)

	assert.False(t, asset.Deleted())
	assert.Nil(t, asset.DeletedAt)
	assert.Empty(t, asset.DeletedBy)
}

func TestHardDelete_RemovesItem(t *testing.T) {
	store := newFakeStore()
	store.put("8", map[string]any{"Title": "Laptop", "IsDeleted": false})
	repo := NewAssetRepository(store, "Assets")

	require.NoError(t, repo.HardDelete(context.Background(), "8"))
	assert.Empty(t, store.items)
}

func TestOpen_ResolveFailureIsInitializationError(t *testing.T) {
	store := newFakeStore()
	store.resolveListErr = apperrors.NewStatusError(errors.New("no such list"), 404, "")
	repo := NewAssetRepository(store, "Assets")

	_, err := repo.List(context.Background(), admin)

	assert.ErrorIs(t, err, apperrors.ErrInitialization)
}

func TestLeaveRepository_AdvanceStage(t *testing.T) {
	store := newFakeStore()
	store.put("1", map[string]any{
		"Title":          "LR-1",
		"RequesterEmail": "jordan@nimbusworks.example",
		"LeaveStatus":    "Pending",
		"CurrentStep":    1.0,
		"IsDeleted":      false,
	})
	repo := NewLeaveRepository(store, "LeaveRequests")

	leave, err := repo.AdvanceStage(context.Background(), "1", domain.LeaveStepManager, "boss@nimbusworks.example")
	require.NoError(t, err)
	assert.Equal(t, 2, leave.CurrentStep)
	assert.Equal(t, "boss@nimbusworks.example", leave.ManagerApprover)
	assert.NotNil(t, leave.ManagerActionAt)
	assert.Equal(t, domain.LeaveStatusPending, leave.Status)

	leave, err = repo.AdvanceStage(context.Background(), "1", domain.LeaveStepDirector, "director@nimbusworks.example")
	require.NoError(t, err)
	assert.Equal(t, 3, leave.CurrentStep)
	assert.Equal(t, "director@nimbusworks.example", leave.DirectorApprover)

	leave, err = repo.AdvanceStage(context.Background(), "1", domain.LeaveStepHR, "hr@nimbusworks.example")
	require.NoError(t, err)
	assert.Equal(t, "hr@nimbusworks.example", leave.HRApprover)
	assert.Equal(t, domain.LeaveStatusApproved, leave.Status, "HR approval finalizes the request")
}

func TestPaymentRepository_WorkflowWrappers(t *testing.T) {
	store := newFakeStore()
	store.put("1", map[string]any{
		"Title":         "PAY-1",
		"PayeeEmail":    "vendor@ext.example",
		"PaymentStatus": "Pending",
		"IsDeleted":     false,
	})
	repo := NewPaymentRepository(store, "Payments")

	payment, err := repo.Approve(context.Background(), "1", "boss@nimbusworks.example")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusApproved, payment.Status)
	assert.Equal(t, "boss@nimbusworks.example", payment.ApprovedBy)
	assert.NotNil(t, payment.ApprovedAt)

	payment, err = repo.MarkAsPaid(context.Background(), "1", "finance@nimbusworks.example")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, payment.Status)
	assert.Equal(t, "finance@nimbusworks.example", payment.PaidBy)
	assert.NotNil(t, payment.PaidAt)
}
