package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
)

func newManageBlocks(repo *dayStubRepo) *ManageBlocks {
	return NewManageBlocks(repo, audit.NewNopDispatcher(), realtime.NopPublisher{})
}

func TestCreateBlock(t *testing.T) {
	repo := newDayStubRepo()
	uc := newManageBlocks(repo)

	block, err := uc.Create(context.Background(), CreateBlockInput{
		StylistID: 1,
		StartAt:   futureAt("14:00"),
		EndAt:     futureAt("15:00"),
		Status:    domain.BlockUnavailable,
	})

	require.NoError(t, err)
	assert.NotZero(t, block.ID)

	// the new block shows up in the resolved day
	slots, err := NewGetDaySchedule(repo, domain.DefaultBufferMinutes).
		Execute(context.Background(), 1, futureDateStr())
	require.NoError(t, err)

	for _, s := range slots {
		if s.Time == "14:00" || s.Time == "14:30" {
			assert.Equal(t, domain.SlotUnavailable, s.Status, "slot %s", s.Time)
		}
	}
}

func TestCreateBlockValidation(t *testing.T) {
	repo := newDayStubRepo()
	uc := newManageBlocks(repo)

	// inverted range
	_, err := uc.Create(context.Background(), CreateBlockInput{
		StylistID: 1,
		StartAt:   futureAt("15:00"),
		EndAt:     futureAt("14:00"),
		Status:    domain.BlockBusy,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_block_range"))

	// zero-width range
	_, err = uc.Create(context.Background(), CreateBlockInput{
		StylistID: 1,
		StartAt:   futureAt("14:00"),
		EndAt:     futureAt("14:00"),
		Status:    domain.BlockBusy,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_block_range"))

	_, err = uc.Create(context.Background(), CreateBlockInput{
		StylistID: 1,
		StartAt:   futureAt("14:00"),
		EndAt:     futureAt("15:00"),
		Status:    "vacation",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_block_status"))
}

func TestUpdateBlockStatus(t *testing.T) {
	repo := newDayStubRepo()
	uc := newManageBlocks(repo)

	block, err := uc.Create(context.Background(), CreateBlockInput{
		StylistID: 1,
		StartAt:   futureAt("14:00"),
		EndAt:     futureAt("15:00"),
		Status:    domain.BlockBusy,
	})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(context.Background(), 1, block.ID, domain.BlockAvailable))
	assert.Equal(t, domain.BlockAvailable, repo.blocks[0].Status)

	err = uc.UpdateStatus(context.Background(), 1, block.ID, "nonsense")
	assert.True(t, httperr.IsBusiness(err, "invalid_block_status"))

	err = uc.UpdateStatus(context.Background(), 1, 999, domain.BlockBusy)
	assert.True(t, httperr.IsBusiness(err, "block_not_found"))
}

func TestDeleteBlockScopedToOwner(t *testing.T) {
	repo := newDayStubRepo()
	uc := newManageBlocks(repo)

	block, err := uc.Create(context.Background(), CreateBlockInput{
		StylistID: 1,
		StartAt:   futureAt("14:00"),
		EndAt:     futureAt("15:00"),
		Status:    domain.BlockBusy,
	})
	require.NoError(t, err)

	// another stylist cannot delete it
	err = uc.Delete(context.Background(), 2, block.ID)
	assert.True(t, httperr.IsBusiness(err, "block_not_found"))
	require.Len(t, repo.blocks, 1)

	require.NoError(t, uc.Delete(context.Background(), 1, block.ID))
	assert.Empty(t, repo.blocks)
}
