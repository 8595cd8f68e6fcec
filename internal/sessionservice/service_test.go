package sessionservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testTimeout = 15 * time.Minute

func TestSignIn(t *testing.T) {
	t.Parallel()

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := NewMockCredentialChecker(ctrl)
		users.EXPECT().
			CheckPassword(gomock.Any(), "alice", "hunter2").
			Times(1).
			Return(domain.Account{Username: "alice"}, nil)

		service := New(users, testTimeout)

		before := time.Now()
		sess, account, err := service.SignIn(context.Background(), domain.Session{}, "alice", "hunter2")
		require.NoError(t, err)

		require.Equal(t, "alice", sess.Username)
		require.Equal(t, "alice", account.Username)
		require.False(t, sess.LastActivity.Before(before))
		require.False(t, sess.Anonymous())
	})

	t.Run("BadCredentials", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := NewMockCredentialChecker(ctrl)
		users.EXPECT().
			CheckPassword(gomock.Any(), "alice", "wrong").
			Times(1).
			Return(domain.Account{}, domain.ErrInvalidCredentials)

		service := New(users, testTimeout)

		sess, _, err := service.SignIn(context.Background(), domain.Session{}, "alice", "wrong")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
		require.True(t, sess.Anonymous())
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		sess    domain.Session
		wantErr error
	}{
		{
			name:    "Anonymous",
			sess:    domain.Session{},
			wantErr: domain.ErrAuthRequired,
		},
		{
			name: "Active",
			sess: domain.Session{Username: "alice", LastActivity: time.Now()},
		},
		{
			name: "JustInsideTimeout",
			sess: domain.Session{
				Username:     "alice",
				LastActivity: time.Now().Add(-testTimeout + time.Second),
			},
		},
		{
			name: "PastTimeout",
			sess: domain.Session{
				Username:     "alice",
				LastActivity: time.Now().Add(-testTimeout - time.Second),
			},
			wantErr: domain.ErrSessionExpired,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := New(NewMockCredentialChecker(ctrl), testTimeout)

			got, err := service.Check(context.Background(), tc.sess)

			switch tc.wantErr {
			case nil:
				require.NoError(t, err)
				require.Equal(t, tc.sess.Username, got.Username)
				// The activity clock moves forward on every authorised call.
				require.True(t, got.LastActivity.After(tc.sess.LastActivity))
			case domain.ErrAuthRequired:
				require.ErrorIs(t, err, domain.ErrAuthRequired)
				require.Equal(t, tc.sess, got)
			case domain.ErrSessionExpired:
				require.ErrorIs(t, err, domain.ErrSessionExpired)
				// Expiry resets the slot so the notice is surfaced only once.
				require.Equal(t, domain.Session{}, got)
			}
		})
	}
}

func TestSignOut(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(NewMockCredentialChecker(ctrl), testTimeout)

	sess := service.SignOut(domain.Session{Username: "alice", LastActivity: time.Now()})
	require.True(t, sess.Anonymous())
}

func TestIsSignedIn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(NewMockCredentialChecker(ctrl), testTimeout)

	require.False(t, service.IsSignedIn(domain.Session{}))
	require.True(t, service.IsSignedIn(domain.Session{Username: "alice", LastActivity: time.Now()}))
	require.False(t, service.IsSignedIn(domain.Session{
		Username:     "alice",
		LastActivity: time.Now().Add(-testTimeout - time.Second),
	}))
}

func TestCurrentUsername(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(NewMockCredentialChecker(ctrl), testTimeout)

	require.Equal(t, "", service.CurrentUsername(domain.Session{}))
	require.Equal(t, "alice", service.CurrentUsername(domain.Session{
		Username:     "alice",
		LastActivity: time.Now(),
	}))
	require.Equal(t, "", service.CurrentUsername(domain.Session{
		Username:     "alice",
		LastActivity: time.Now().Add(-testTimeout - time.Second),
	}))
}
