package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name    string
		current string
		patch   UpdatePatch
		want    string
	}{
		{
			name:    "empty patch keeps current status",
			current: StatusSent,
			patch:   UpdatePatch{},
			want:    StatusSent,
		},
		{
			name:    "explicit status wins",
			current: StatusSent,
			patch:   UpdatePatch{Status: strPtr(StatusViewed)},
			want:    StatusViewed,
		},
		{
			name:    "owner response without status forces responded",
			current: StatusViewed,
			patch:   UpdatePatch{OwnerResponse: strPtr("Moving now")},
			want:    StatusResponded,
		},
		{
			name:    "empty owner response still forces responded",
			current: StatusSent,
			patch:   UpdatePatch{OwnerResponse: strPtr("")},
			want:    StatusResponded,
		},
		{
			name:    "explicit status wins over owner response",
			current: StatusViewed,
			patch:   UpdatePatch{Status: strPtr(StatusEscalated), OwnerResponse: strPtr("On my way")},
			want:    StatusEscalated,
		},
		{
			name:    "resolved can be re-opened by explicit status",
			current: StatusResolved,
			patch:   UpdatePatch{Status: strPtr(StatusViewed)},
			want:    StatusViewed,
		},
		{
			name:    "revision-only patch keeps current status",
			current: StatusEscalated,
			patch:   UpdatePatch{Revision: func() *uint { r := uint(2); return &r }()},
			want:    StatusEscalated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(tt.current, tt.patch))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusSent, StatusViewed, StatusResponded, StatusEscalated, StatusResolved} {
		assert.True(t, ValidStatus(s), s)
	}

	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Sent"))
	assert.False(t, ValidStatus("towed"))
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "KA01MM7788", NormalizePlate("ka 01 mm 7788"))
	assert.Equal(t, "MH12CD2020", NormalizePlate("MH-12-CD-2020"))
	assert.Equal(t, "", NormalizePlate("  --  "))
}
