package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/pkg/ctxutil"
)

// UpdatePreferences applies a partial update to the authenticated user's
// preferences and records the changed fields in the audit log.
func (s *Service) UpdatePreferences(ctx context.Context, input UpdatePreferencesInput) (*domain.Preferences, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var result *domain.Preferences

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetPreferences(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get current preferences: %w", err)
		}

		next := applyPreferences(*current, input)
		changes := diffPreferences(*current, next)
		if len(changes) == 0 {
			result = current
			return nil
		}

		next.UpdatedAt = s.clock.Now().UTC()
		updated, err := s.users.UpdatePreferences(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update preferences: %w", err)
		}
		result = updated

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.AuditEntityPreferences,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdatePreferences: %w", err)
	}

	s.log.InfoContext(ctx, "preferences updated", slog.String("user_id", userID.String()))
	return result, nil
}

func applyPreferences(p domain.Preferences, input UpdatePreferencesInput) domain.Preferences {
	if input.NotificationsEnabled != nil {
		p.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.DailyCheckInTime != nil {
		if *input.DailyCheckInTime == "" {
			p.DailyCheckInTime = nil
		} else {
			v := *input.DailyCheckInTime
			p.DailyCheckInTime = &v
		}
	}
	if input.CravingAlertsEnabled != nil {
		p.CravingAlertsEnabled = *input.CravingAlertsEnabled
	}
	if input.ChatbotTone != nil {
		p.ChatbotTone = *input.ChatbotTone
	}
	if input.Language != nil {
		p.Language = *input.Language
	}
	if input.Theme != nil {
		p.Theme = *input.Theme
	}
	return p
}

// diffPreferences returns field changes keyed by column name.
func diffPreferences(old, new domain.Preferences) map[string]any {
	changes := make(map[string]any)

	if old.NotificationsEnabled != new.NotificationsEnabled {
		changes["notifications_enabled"] = domain.FieldChange(old.NotificationsEnabled, new.NotificationsEnabled)
	}
	if oldT, newT := deref(old.DailyCheckInTime), deref(new.DailyCheckInTime); oldT != newT {
		changes["daily_check_in_time"] = domain.FieldChange(oldT, newT)
	}
	if old.CravingAlertsEnabled != new.CravingAlertsEnabled {
		changes["craving_alerts_enabled"] = domain.FieldChange(old.CravingAlertsEnabled, new.CravingAlertsEnabled)
	}
	if old.ChatbotTone != new.ChatbotTone {
		changes["ai_chatbot_tone"] = domain.FieldChange(old.ChatbotTone.String(), new.ChatbotTone.String())
	}
	if old.Language != new.Language {
		changes["language"] = domain.FieldChange(old.Language, new.Language)
	}
	if old.Theme != new.Theme {
		changes["theme"] = domain.FieldChange(old.Theme.String(), new.Theme.String())
	}

	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
