package command

import (
	"errors"
	"testing"

	"github.com/mutualmatch/mutual-backend/internal/datasources/memory"
	"github.com/mutualmatch/mutual-backend/internal/datasources/mocks"
	"github.com/mutualmatch/mutual-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeChat_Execute(t *testing.T) {
	maria := domain.UserSummary{ID: 7, Username: "maria"}

	cases := []struct {
		name        string
		req         AuthorizeChatRequest
		resolveErr  error
		exists      bool
		existsErr   error
		wantResolve bool
		wantCheck   bool
		wantErr     error
		wantErrMsg  string
	}{
		{
			name:        "matched",
			req:         AuthorizeChatRequest{UserID: 9, PeerID: 7},
			exists:      true,
			wantResolve: true,
			wantCheck:   true,
		},
		{
			name:        "not_matched",
			req:         AuthorizeChatRequest{UserID: 9, PeerID: 7},
			wantResolve: true,
			wantCheck:   true,
			wantErr:     domain.ErrNoMatch,
		},
		{
			name:        "unknown_peer",
			req:         AuthorizeChatRequest{UserID: 9, PeerID: 7},
			resolveErr:  domain.ErrUnknownUser,
			wantResolve: true,
			wantErr:     domain.ErrUnknownUser,
		},
		{
			name:    "self",
			req:     AuthorizeChatRequest{UserID: 7, PeerID: 7},
			wantErr: domain.ErrSelfInteraction,
		},
		{
			name:        "check_error",
			req:         AuthorizeChatRequest{UserID: 9, PeerID: 7},
			existsErr:   errors.New("db error"),
			wantResolve: true,
			wantCheck:   true,
			wantErrMsg:  "checking match: db error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserResolver(t)
			checker := mocks.NewMockMatchChecker(t)

			if tc.wantResolve {
				users.EXPECT().ResolveUser(mock.Anything, tc.req.PeerID).Return(maria, tc.resolveErr)
			}
			if tc.wantCheck {
				checker.EXPECT().
					MatchExists(mock.Anything, domain.Pair{Low: 7, High: 9}).
					Return(tc.exists, tc.existsErr)
			}

			cmd := NewAuthorizeChat(users, checker)
			room, err := cmd.Execute(testContext(), tc.req)
			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.wantErrMsg != "":
				require.EqualError(t, err, tc.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "7_9", room.ID())
				assert.Equal(t, maria, room.Peer)
			}
		})
	}
}

func TestAuthorizeChat_SymmetricRoom(t *testing.T) {
	store := memory.New()
	store.AddUser(domain.UserSummary{ID: 3, Username: "ivan"})
	store.AddUser(domain.UserSummary{ID: 11, Username: "maria"})
	cmd := NewAuthorizeChat(store, store)
	ctx := testContext()

	_, err := cmd.Execute(ctx, AuthorizeChatRequest{UserID: 3, PeerID: 11})
	require.ErrorIs(t, err, domain.ErrNoMatch)
	_, err = cmd.Execute(ctx, AuthorizeChatRequest{UserID: 11, PeerID: 3})
	require.ErrorIs(t, err, domain.ErrNoMatch)

	store.AddMatch(domain.NewPair(11, 3))

	fromIvan, err := cmd.Execute(ctx, AuthorizeChatRequest{UserID: 3, PeerID: 11})
	require.NoError(t, err)
	fromMaria, err := cmd.Execute(ctx, AuthorizeChatRequest{UserID: 11, PeerID: 3})
	require.NoError(t, err)

	assert.Equal(t, fromIvan.ID(), fromMaria.ID())
	assert.Equal(t, fromIvan.Pair.GroupName(), fromMaria.Pair.GroupName())
	assert.Equal(t, "maria", fromIvan.Peer.Username)
	assert.Equal(t, "ivan", fromMaria.Peer.Username)
}
