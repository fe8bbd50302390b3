package access_test

import (
	"testing"

	"github.com/maynagashev/playlists/internal/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID     = int64(1)
	sharedID    = int64(2)
	unrelatedID = int64(3)
)

var playlist = access.Resource{OwnerID: ownerID, SharedWith: []int64{sharedID}}

func TestAllowed(t *testing.T) {
	allOps := []access.Operation{
		access.Read, access.ListSongs, access.Update, access.Delete,
		access.AddSong, access.Share, access.ListShares, access.UploadCover,
	}
	readOps := map[access.Operation]bool{access.Read: true, access.ListSongs: true}

	tests := []struct {
		name      string
		requester int64
		allowed   func(op access.Operation) bool
	}{
		{
			name:      "Владелец может все",
			requester: ownerID,
			allowed:   func(access.Operation) bool { return true },
		},
		{
			name:      "Пользователь с доступом может только читать",
			requester: sharedID,
			allowed:   func(op access.Operation) bool { return readOps[op] },
		},
		{
			name:      "Посторонний пользователь не может ничего",
			requester: unrelatedID,
			allowed:   func(access.Operation) bool { return false },
		},
	}

	for _, tt := range tests {
		for _, op := range allOps {
			t.Run(tt.name+"/"+op.String(), func(t *testing.T) {
				assert.Equal(t, tt.allowed(op), access.Allowed(tt.requester, playlist, op))
			})
		}
	}
}

func TestAllowed_UnknownOperation(t *testing.T) {
	assert.False(t, access.Allowed(ownerID, playlist, access.Operation(100)))
	assert.Equal(t, "unknown", access.Operation(100).String())
}

func TestAuthorize(t *testing.T) {
	require.NoError(t, access.Authorize(ownerID, playlist, access.Delete))
	require.NoError(t, access.Authorize(sharedID, playlist, access.Read))
	assert.ErrorIs(t, access.Authorize(sharedID, playlist, access.Update), access.ErrForbidden)
	assert.ErrorIs(t, access.Authorize(sharedID, playlist, access.Share), access.ErrForbidden)
	assert.ErrorIs(t, access.Authorize(unrelatedID, playlist, access.Read), access.ErrForbidden)
}

func TestResource_EmptyShareList(t *testing.T) {
	r := access.Resource{OwnerID: ownerID}
	assert.True(t, r.IsOwner(ownerID))
	assert.False(t, r.IsShared(sharedID))
	assert.False(t, access.Allowed(sharedID, r, access.Read))
}

func TestCheckSecretQuota(t *testing.T) {
	tests := []struct {
		name          string
		wantSecret    bool
		currentSecret int
		expectedErr   error
	}{
		{name: "Обычный плейлист без ограничений", wantSecret: false, currentSecret: 100, expectedErr: nil},
		{name: "Первый секретный", wantSecret: true, currentSecret: 0, expectedErr: nil},
		{name: "Десятый секретный разрешен", wantSecret: true, currentSecret: 9, expectedErr: nil},
		{
			name: "Одиннадцатый секретный запрещен", wantSecret: true, currentSecret: 10,
			expectedErr: access.ErrSecretQuotaExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := access.CheckSecretQuota(tt.wantSecret, tt.currentSecret)
			if tt.expectedErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}
