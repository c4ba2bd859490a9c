package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_ZeroValueIsActive(t *testing.T) {
	var l Lifecycle
	assert.True(t, l.IsActive())
	_, ok := l.DeletedAt()
	assert.False(t, ok)
}

func TestLifecycle_Apply(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name    string
		from    Lifecycle
		tr      Transition
		want    State
		wantErr bool
	}{
		{name: "delete active", from: Active(), tr: TransitionDelete, want: StateDeleted},
		{name: "restore deleted", from: DeletedAt(earlier), tr: TransitionRestore, want: StateActive},
		{name: "purge deleted", from: DeletedAt(earlier), tr: TransitionPurge, want: StatePurged},
		{name: "restore active", from: Active(), tr: TransitionRestore, wantErr: true},
		{name: "purge active", from: Active(), tr: TransitionPurge, wantErr: true},
		{name: "delete deleted", from: DeletedAt(earlier), tr: TransitionDelete, wantErr: true},
		{name: "restore purged", from: Purged(), tr: TransitionRestore, wantErr: true},
		{name: "purge purged", from: Purged(), tr: TransitionPurge, wantErr: true},
		{name: "delete purged", from: Purged(), tr: TransitionDelete, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Apply(tt.tr, now)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrIllegalTransition)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.State())
		})
	}
}

func TestLifecycle_DeleteStampsTime(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l, err := Active().Apply(TransitionDelete, now)
	require.NoError(t, err)

	at, ok := l.DeletedAt()
	require.True(t, ok)
	assert.Equal(t, now, at)

	restored, err := l.Apply(TransitionRestore, now)
	require.NoError(t, err)
	_, ok = restored.DeletedAt()
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRole("superuser")
	require.ErrorIs(t, err, common.ErrorInvalidRole)
	_, err = ParseRole("")
	require.ErrorIs(t, err, common.ErrorInvalidRole)
}
