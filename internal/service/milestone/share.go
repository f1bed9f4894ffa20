package milestone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// ShareMilestone marks an unlocked milestone as shared. It reports false,
// without error, when the user has not unlocked the milestone.
func (s *Service) ShareMilestone(ctx context.Context, milestoneID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	shared, err := s.unlocks.SetShared(ctx, userID, milestoneID)
	if err != nil {
		return false, fmt.Errorf("milestone.ShareMilestone: %w", err)
	}
	if shared {
		s.log.InfoContext(ctx, "milestone shared",
			slog.String("user_id", userID.String()),
			slog.String("milestone_id", milestoneID.String()),
		)
	}
	return shared, nil
}
