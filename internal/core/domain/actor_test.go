package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterVisible(t *testing.T) {
	assets := []Asset{
		{AssetID: "1", AssignedToEmail: "jordan@nimbusworks.example"},
		{AssetID: "2", AssignedToEmail: "JORDAN@nimbusworks.example"},
		{AssetID: "3", AssignedToEmail: "dana@nimbusworks.example"},
		{AssetID: "4", AssignedToEmail: ""},
	}

	t.Run("admin sees everything", func(t *testing.T) {
		visible := FilterVisible(assets, Actor{Email: "x@nimbusworks.example", Role: RoleAdmin})
		assert.Len(t, visible, 4)
	})

	t.Run("manager sees everything", func(t *testing.T) {
		visible := FilterVisible(assets, Actor{Email: "x@nimbusworks.example", Role: RoleManager})
		assert.Len(t, visible, 4)
	})

	t.Run("member sees own records case-insensitively", func(t *testing.T) {
		visible := FilterVisible(assets, Actor{Email: "jordan@nimbusworks.example", Role: RoleMember})
		assert.Len(t, visible, 2)
		assert.Equal(t, "1", visible[0].AssetID)
		assert.Equal(t, "2", visible[1].AssetID)
	})

	t.Run("unowned records hidden from members", func(t *testing.T) {
		visible := FilterVisible(assets, Actor{Email: "nobody@nimbusworks.example", Role: RoleMember})
		assert.Empty(t, visible)
	})
}

func TestActorPrivileged(t *testing.T) {
	assert.True(t, Actor{Role: RoleAdmin}.Privileged())
	assert.True(t, Actor{Role: RoleManager}.Privileged())
	assert.False(t, Actor{Role: RoleMember}.Privileged())
	assert.False(t, Actor{}.Privileged())
}

func TestRefLabelOrUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", Ref{}.LabelOrUnknown())
	assert.Equal(t, "Unknown", Ref{ID: "4"}.LabelOrUnknown())
	assert.Equal(t, "Growth", Ref{ID: "4", Label: "Growth"}.LabelOrUnknown())
}
