package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from, event, want string
		wantErr           bool
	}{
		{quotation.StatusDraft, quotation.EventGenerate, quotation.StatusGenerated, false},
		{quotation.StatusGenerated, quotation.EventSave, quotation.StatusPersisted, false},
		{quotation.StatusPersisted, quotation.EventGenerate, quotation.StatusGenerated, false},
		{quotation.StatusPersisted, quotation.EventSave, quotation.StatusPersisted, false},
		{quotation.StatusGenerated, quotation.EventEdit, quotation.StatusDraft, false},
		{quotation.StatusDraft, quotation.EventSave, quotation.StatusDraft, true},
		{"UNKNOWN", quotation.EventGenerate, "UNKNOWN", true},
	}
	for _, tt := range tests {
		got, err := quotation.Transition(tt.from, tt.event)
		if tt.wantErr {
			assert.ErrorIs(t, err, quotation.ErrInvalidTransition, "%s desde %s", tt.event, tt.from)
		} else {
			assert.NoError(t, err, "%s desde %s", tt.event, tt.from)
		}
		assert.Equal(t, tt.want, got)
	}
}

func TestRemoveItem(t *testing.T) {
	items := []quotation.LineItem{
		{Quantity: d("1"), Rate: d("10")},
		{Quantity: d("2"), Rate: d("20")},
	}

	rest, err := quotation.RemoveItem(items, 0)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assertDec(t, "20", rest[0].Rate, "queda la segunda línea")
	assert.Len(t, items, 2, "no modifica la lista original")

	_, err = quotation.RemoveItem(rest, 0)
	assert.ErrorIs(t, err, quotation.ErrLastItem)

	_, err = quotation.RemoveItem(items, 5)
	assert.Error(t, err)
}
