package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testDict = NewDictionary(
	FieldDef{Domain: "name", External: "Title", Type: Text},
	FieldDef{Domain: "amount", External: "Amount", Type: Number},
	FieldDef{Domain: "active", External: "IsActive", Type: Boolean},
	FieldDef{Domain: "when", External: "EventDate", Type: Date},
	FieldDef{Domain: "tags", External: "Tags", Type: JSONBlob},
	FieldDef{Domain: "parent_id", External: "ParentLookupId", Type: LookupID},
)

func TestToExternal_OmitsAbsentAndEmptyFields(t *testing.T) {
	out := testDict.ToExternal(map[string]any{
		"name":   "",
		"amount": nil,
	})

	assert.NotContains(t, out, "Title", "empty strings are omitted")
	assert.NotContains(t, out, "Amount", "nil values are omitted")
	assert.NotContains(t, out, "EventDate", "absent fields are omitted")
}

func TestToExternal_BooleansAlwaysSent(t *testing.T) {
	out := testDict.ToExternal(map[string]any{"active": false})
	assert.Equal(t, false, out["IsActive"], "false booleans must be sent explicitly")

	out = testDict.ToExternal(map[string]any{"active": "true"})
	assert.Equal(t, true, out["IsActive"])

	out = testDict.ToExternal(map[string]any{"active": nil})
	assert.Equal(t, false, out["IsActive"], "nil coerces to false rather than being dropped")
}

func TestToExternal_DateOnlyGetsMidnightSuffix(t *testing.T) {
	out := testDict.ToExternal(map[string]any{"when": "2026-03-15"})
	assert.Equal(t, "2026-03-15T00:00:00Z", out["EventDate"])

	out = testDict.ToExternal(map[string]any{"when": "2026-03-15T09:30:00Z"})
	assert.Equal(t, "2026-03-15T09:30:00Z", out["EventDate"], "qualified timestamps pass through")

	ts := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	out = testDict.ToExternal(map[string]any{"when": ts})
	assert.Equal(t, "2026-03-15T09:30:00Z", out["EventDate"])
}

func TestToExternal_JSONBlobSerialized(t *testing.T) {
	out := testDict.ToExternal(map[string]any{"tags": []string{"a", "b"}})
	assert.Equal(t, `["a","b"]`, out["Tags"])
}

func TestToExternal_NumbersAndLookups(t *testing.T) {
	out := testDict.ToExternal(map[string]any{
		"amount":    decimal.NewFromFloat(12.5),
		"parent_id": 7,
	})
	assert.Equal(t, 12.5, out["Amount"])
	assert.Equal(t, 7, out["ParentLookupId"])

	// Malformed numeric text coerces to zero, never an error.
	out = testDict.ToExternal(map[string]any{"amount": "not-a-number"})
	assert.Equal(t, 0.0, out["Amount"])
}

func TestToExternal_UnknownFieldsNeverSent(t *testing.T) {
	out := testDict.ToExternal(map[string]any{"bogus": "value"})
	assert.Empty(t, out)
}

func TestFromExternal_DefaultsForMissingFields(t *testing.T) {
	vals := testDict.FromExternal(map[string]any{})

	assert.Equal(t, "", vals["name"])
	assert.Equal(t, 0.0, vals["amount"])
	assert.Equal(t, false, vals["active"])
	assert.Nil(t, vals["when"])
	assert.Equal(t, []string{}, vals["tags"])
	assert.Equal(t, "", vals["parent_id"])
}

func TestFromExternal_UnwrapsNestedTitleProjection(t *testing.T) {
	vals := testDict.FromExternal(map[string]any{
		"Title": map[string]any{"Title": "Quarterly Review"},
	})
	assert.Equal(t, "Quarterly Review", vals["name"])
}

func TestFromExternal_NumericAsTextTolerated(t *testing.T) {
	vals := testDict.FromExternal(map[string]any{"Amount": " 42.75 "})
	assert.Equal(t, 42.75, vals["amount"])

	vals = testDict.FromExternal(map[string]any{"Amount": "garbage"})
	assert.Equal(t, 0.0, vals["amount"], "malformed numerics fall back to zero")
}

func TestFromExternal_BlobParseFailureYieldsEmptyCollection(t *testing.T) {
	vals := testDict.FromExternal(map[string]any{"Tags": "{{{not json"})
	assert.Equal(t, []string{}, vals["tags"])

	vals = testDict.FromExternal(map[string]any{"Tags": `[1,2,3]`})
	assert.Equal(t, []string{"1", "2", "3"}, vals["tags"], "non-string scalars are re-rendered")
}

func TestFromExternal_LookupIDVariants(t *testing.T) {
	vals := testDict.FromExternal(map[string]any{"ParentLookupId": 12.0})
	assert.Equal(t, "12", vals["parent_id"])

	vals = testDict.FromExternal(map[string]any{"ParentLookupId": "8"})
	assert.Equal(t, "8", vals["parent_id"])
}

func TestClearValues_EmitsExplicitNulls(t *testing.T) {
	out := testDict.ClearValues("when", "name", "not_in_dict")

	assert.Len(t, out, 2)
	v, present := out["EventDate"]
	assert.True(t, present)
	assert.Nil(t, v)
	v, present = out["Title"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestRoundTrip_DateSurvives(t *testing.T) {
	out := testDict.ToExternal(map[string]any{"when": "2026-03-15"})
	vals := testDict.FromExternal(out)

	ts := TimePtr(vals, "when")
	if assert.NotNil(t, ts) {
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *ts)
	}
}

func TestNewDictionary_PanicsOnDuplicateDomainField(t *testing.T) {
	assert.Panics(t, func() {
		NewDictionary(
			FieldDef{Domain: "x", External: "X", Type: Text},
			FieldDef{Domain: "x", External: "Y", Type: Text},
		)
	})
}
