package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID_RoundTrip(t *testing.T) {
	secret := []byte("note_app_secret")

	token, err := SignSessionID(secret, "sid-1", time.Hour)
	require.NoError(t, err)

	sid, err := ParseSessionID(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sid)
}

func TestParseSessionID_Rejects(t *testing.T) {
	secret := []byte("note_app_secret")
	expired, err := SignSessionID(secret, "sid-1", -time.Minute)
	require.NoError(t, err)
	empty, err := SignSessionID(secret, "", time.Hour)
	require.NoError(t, err)
	other, err := SignSessionID([]byte("other"), "sid-1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"expired", expired},
		{"wrong secret", other},
		{"empty sid", empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionID(secret, tt.token)
			assert.Error(t, err)
		})
	}
}
