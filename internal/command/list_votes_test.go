package command

import (
	"testing"

	"github.com/mutualmatch/mutual-backend/internal/datasources/memory"
	"github.com/mutualmatch/mutual-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVotes_Execute(t *testing.T) {
	store := memory.New()
	for _, u := range []domain.UserSummary{{ID: 1, Username: "ivan"}, {ID: 2, Username: "maria"}, {ID: 3, Username: "olga"}} {
		store.AddUser(u)
	}
	ctx := testContext()
	record := NewRecordVote(store, store)
	_, err := record.Execute(ctx, RecordVoteRequest{VoterID: 1, TargetID: 2, Value: domain.VoteLike})
	require.NoError(t, err)
	_, err = record.Execute(ctx, RecordVoteRequest{VoterID: 1, TargetID: 3, Value: domain.VoteDislike})
	require.NoError(t, err)

	cmd := &ListVotes{Votes: store, Users: store}

	likes, err := cmd.Execute(ctx, ListVotesRequest{VoterID: 1, Value: domain.VoteLike, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, "maria", likes[0].User.Username)

	dislikes, err := cmd.Execute(ctx, ListVotesRequest{VoterID: 1, Value: domain.VoteDislike, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, dislikes, 1)
	assert.Equal(t, "olga", dislikes[0].User.Username)
	assert.Equal(t, domain.VoteDislike, dislikes[0].Value)

	_, err = cmd.Execute(ctx, ListVotesRequest{VoterID: 1, Value: 3, Page: 1, PageSize: 10})
	require.ErrorIs(t, err, domain.ErrInvalidVote)
}
