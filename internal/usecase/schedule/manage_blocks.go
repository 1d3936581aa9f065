package schedule

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	domain "github.com/glowdesk/salon-scheduler/internal/domain/schedule"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/realtime"
)

// ManageBlocks covers the stylist's explicit availability overrides.
// Blocks of any duration are accepted; the resolver intersects them against
// the 30-minute grid instead of forcing alignment.
type ManageBlocks struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events realtime.Publisher
}

func NewManageBlocks(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events realtime.Publisher,
) *ManageBlocks {
	return &ManageBlocks{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

type CreateBlockInput struct {
	StylistID uint
	StartAt   time.Time
	EndAt     time.Time
	Status    string
}

func (uc *ManageBlocks) Create(
	ctx context.Context,
	in CreateBlockInput,
) (*models.AvailabilityBlock, error) {

	if !in.EndAt.After(in.StartAt) {
		return nil, httperr.ErrBusiness("invalid_block_range")
	}
	if !domain.IsValidBlockStatus(in.Status) {
		return nil, httperr.ErrBusiness("invalid_block_status")
	}

	block := &models.AvailabilityBlock{
		StylistID: in.StylistID,
		StartAt:   in.StartAt,
		EndAt:     in.EndAt,
		Status:    in.Status,
	}

	if err := uc.repo.CreateAvailabilityBlock(ctx, block); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: in.StylistID,
		ActorID:   &in.StylistID,
		Action:    "availability_block_created",
		Entity:    "availability_block",
		EntityID:  &block.ID,
	})
	uc.events.Publish(ctx, in.StylistID, realtime.Event{
		Table:  realtime.TableAvailabilityBlocks,
		Action: "insert",
	})

	return block, nil
}

func (uc *ManageBlocks) UpdateStatus(
	ctx context.Context,
	stylistID uint,
	blockID uint,
	status string,
) error {

	if !domain.IsValidBlockStatus(status) {
		return httperr.ErrBusiness("invalid_block_status")
	}

	if err := uc.repo.UpdateAvailabilityBlockStatus(ctx, blockID, stylistID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("block_not_found")
		}
		return httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		ActorID:   &stylistID,
		Action:    "availability_block_updated",
		Entity:    "availability_block",
		EntityID:  &blockID,
		Metadata:  map[string]any{"status": status},
	})
	uc.events.Publish(ctx, stylistID, realtime.Event{
		Table:  realtime.TableAvailabilityBlocks,
		Action: "update",
	})

	return nil
}

func (uc *ManageBlocks) Delete(
	ctx context.Context,
	stylistID uint,
	blockID uint,
) error {

	if err := uc.repo.DeleteAvailabilityBlock(ctx, blockID, stylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("block_not_found")
		}
		return httperr.ErrBusiness(httperr.CodeStoreUnreachable)
	}

	uc.audit.Dispatch(audit.Event{
		StylistID: stylistID,
		ActorID:   &stylistID,
		Action:    "availability_block_deleted",
		Entity:    "availability_block",
		EntityID:  &blockID,
	})
	uc.events.Publish(ctx, stylistID, realtime.Event{
		Table:  realtime.TableAvailabilityBlocks,
		Action: "delete",
	})

	return nil
}
