package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/auth"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/quitplan"
)

type userResponse struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	FirstName         *string    `json:"firstName"`
	LastName          *string    `json:"lastName"`
	ProfilePictureURL *string    `json:"profilePictureUrl"`
	CreatedAt         time.Time  `json:"createdAt"`
	LastLoginAt       *time.Time `json:"lastLoginAt,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
		LastLoginAt:       u.LastLoginAt,
	}
}

type tokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type authResponse struct {
	User   *userResponse  `json:"user,omitempty"`
	Tokens tokensResponse `json:"tokens"`
}

func toAuthResponse(res *auth.AuthResult, withUser bool) authResponse {
	out := authResponse{Tokens: tokensResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    res.ExpiresIn,
	}}
	if withUser && res.User != nil {
		u := toUserResponse(res.User)
		out.User = &u
	}
	return out
}

type preferencesResponse struct {
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	DailyCheckInTime     *string   `json:"dailyCheckInTime"`
	CravingAlertsEnabled bool      `json:"cravingAlertsEnabled"`
	ChatbotTone          string    `json:"aiChatbotTone"`
	Language             string    `json:"language"`
	Theme                string    `json:"theme"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func toPreferencesResponse(p *domain.Preferences) preferencesResponse {
	return preferencesResponse{
		NotificationsEnabled: p.NotificationsEnabled,
		DailyCheckInTime:     p.DailyCheckInTime,
		CravingAlertsEnabled: p.CravingAlertsEnabled,
		ChatbotTone:          p.ChatbotTone.String(),
		Language:             p.Language,
		Theme:                p.Theme.String(),
		UpdatedAt:            p.UpdatedAt,
	}
}

type quitPlanResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	QuitDate          time.Time `json:"quitDate"`
	CigarettesPerDay  int       `json:"cigarettesPerDay"`
	CostPerPack       float64   `json:"costPerPack"`
	CigarettesPerPack int       `json:"cigarettesPerPack"`
	Motivations       []string  `json:"motivations"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type savingsResponse struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

type planResultResponse struct {
	QuitPlan quitPlanResponse `json:"quitPlan"`
	Savings  savingsResponse  `json:"savings"`
}

func toPlanResultResponse(res *quitplan.PlanResult) planResultResponse {
	p := res.Plan
	return planResultResponse{
		QuitPlan: quitPlanResponse{
			ID:                p.ID,
			UserID:            p.UserID,
			QuitDate:          p.QuitDate,
			CigarettesPerDay:  p.CigarettesPerDay,
			CostPerPack:       p.CostPerPack,
			CigarettesPerPack: p.CigarettesPerPack,
			Motivations:       nonNil(p.Motivations),
			CreatedAt:         p.CreatedAt,
			UpdatedAt:         p.UpdatedAt,
		},
		Savings: savingsResponse{
			Daily:   res.Savings.Daily,
			Weekly:  res.Savings.Weekly,
			Monthly: res.Savings.Monthly,
			Yearly:  res.Savings.Yearly,
		},
	}
}

type cravingResponse struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"userId"`
	Intensity            int       `json:"intensity"`
	Triggers             []string  `json:"triggers"`
	ReliefTechniquesUsed []string  `json:"reliefTechniquesUsed"`
	Duration             *int      `json:"duration"`
	Notes                *string   `json:"notes"`
	Resolved             bool      `json:"resolved"`
	CreatedAt            time.Time `json:"createdAt"`
}

func toCravingResponse(c *domain.Craving) cravingResponse {
	return cravingResponse{
		ID:                   c.ID,
		UserID:               c.UserID,
		Intensity:            c.Intensity,
		Triggers:             nonNil(c.Triggers),
		ReliefTechniquesUsed: nonNil(c.ReliefTechniquesUsed),
		Duration:             c.Duration,
		Notes:                c.Notes,
		Resolved:             c.Resolved,
		CreatedAt:            c.CreatedAt,
	}
}

type triggerCountResponse struct {
	Trigger string `json:"trigger"`
	Count   int    `json:"count"`
}

func toTriggerCounts(in []domain.TriggerCount) []triggerCountResponse {
	out := make([]triggerCountResponse, len(in))
	for i, t := range in {
		out[i] = triggerCountResponse{Trigger: t.Trigger, Count: t.Count}
	}
	return out
}

type dayCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type analyticsResponse struct {
	TotalCravings      int                    `json:"totalCravings"`
	AverageIntensity   float64                `json:"averageIntensity"`
	MostCommonTriggers []triggerCountResponse `json:"mostCommonTriggers"`
	CravingsByDay      []dayCountResponse     `json:"cravingsByDay"`
	ResolutionRate     float64                `json:"resolutionRate"`
}

func toAnalyticsResponse(a *domain.CravingAnalytics) analyticsResponse {
	days := make([]dayCountResponse, len(a.CravingsByDay))
	for i, d := range a.CravingsByDay {
		days[i] = dayCountResponse{Date: d.Date.UTC().Format(time.DateOnly), Count: d.Count}
	}
	return analyticsResponse{
		TotalCravings:      a.TotalCravings,
		AverageIntensity:   a.AverageIntensity,
		MostCommonTriggers: toTriggerCounts(a.MostCommonTriggers),
		CravingsByDay:      days,
		ResolutionRate:     a.ResolutionRate,
	}
}

type smokeFreeTimeResponse struct {
	Days         int64 `json:"days"`
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	Seconds      int64 `json:"seconds"`
	TotalSeconds int64 `json:"totalSeconds"`
	TotalMinutes int64 `json:"totalMinutes"`
	TotalHours   int64 `json:"totalHours"`
	TotalDays    int64 `json:"totalDays"`
}

func toSmokeFreeTime(d domain.SmokeFreeDuration) smokeFreeTimeResponse {
	return smokeFreeTimeResponse{
		Days:         d.Days,
		Hours:        d.Hours,
		Minutes:      d.Minutes,
		Seconds:      d.Seconds,
		TotalSeconds: d.TotalSeconds,
		TotalMinutes: d.TotalMinutes,
		TotalHours:   d.TotalHours,
		TotalDays:    d.TotalDays,
	}
}

type lifeRegainedResponse struct {
	Minutes int64 `json:"minutes"`
	Hours   int64 `json:"hours"`
	Days    int64 `json:"days"`
}

type statisticsResponse struct {
	SmokeFreeTime       smokeFreeTimeResponse `json:"smokeFreeTime"`
	MoneySaved          float64               `json:"moneySaved"`
	CigarettesNotSmoked int64                 `json:"cigarettesNotSmoked"`
	LifeRegained        lifeRegainedResponse  `json:"lifeRegained"`
	CurrentStreak       int64                 `json:"currentStreak"`
	QuitDate            time.Time             `json:"quitDate"`
}

func toStatisticsResponse(s *domain.Statistics) statisticsResponse {
	return statisticsResponse{
		SmokeFreeTime:       toSmokeFreeTime(s.SmokeFreeTime),
		MoneySaved:          s.MoneySaved,
		CigarettesNotSmoked: s.CigarettesNotSmoked,
		LifeRegained: lifeRegainedResponse{
			Minutes: s.LifeRegained.Minutes,
			Hours:   s.LifeRegained.Hours,
			Days:    s.LifeRegained.Days,
		},
		CurrentStreak: s.CurrentStreak,
		QuitDate:      s.QuitDate,
	}
}

type milestoneResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	DurationHours  float64   `json:"durationHours"`
	ThresholdValue float64   `json:"thresholdValue"`
	ThresholdUnit  string    `json:"thresholdUnit"`
	Icon           *string   `json:"icon"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toMilestoneResponse(m *domain.MilestoneDefinition) milestoneResponse {
	return milestoneResponse{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Category:       m.Category.String(),
		DurationHours:  m.DurationHours,
		ThresholdValue: m.ThresholdValue,
		ThresholdUnit:  m.ThresholdUnit.String(),
		Icon:           m.Icon,
		CreatedAt:      m.CreatedAt,
	}
}

type timeRemainingResponse struct {
	Hours int `json:"hours"`
	Days  int `json:"days"`
}

type milestoneProgressResponse struct {
	Milestone     milestoneResponse      `json:"milestone"`
	Unlocked      bool                   `json:"unlocked"`
	UnlockedAt    *time.Time             `json:"unlockedAt"`
	Progress      int                    `json:"progress"`
	TimeRemaining *timeRemainingResponse `json:"timeRemaining,omitempty"`
}

func toProgressResponse(in []domain.MilestoneProgress) []milestoneProgressResponse {
	out := make([]milestoneProgressResponse, len(in))
	for i := range in {
		p := &in[i]
		out[i] = milestoneProgressResponse{
			Milestone:  toMilestoneResponse(&p.Milestone),
			Unlocked:   p.Unlocked,
			UnlockedAt: p.UnlockedAt,
			Progress:   p.Progress,
		}
		if p.TimeRemaining != nil {
			out[i].TimeRemaining = &timeRemainingResponse{Hours: p.TimeRemaining.Hours, Days: p.TimeRemaining.Days}
		}
	}
	return out
}

type unlockResponse struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"userId"`
	MilestoneID uuid.UUID          `json:"milestoneId"`
	UnlockedAt  time.Time          `json:"unlockedAt"`
	Shared      bool               `json:"shared"`
	Milestone   *milestoneResponse `json:"milestone,omitempty"`
}

func toUnlockResponses(in []domain.UnlockRecord) []unlockResponse {
	out := make([]unlockResponse, len(in))
	for i, u := range in {
		out[i] = unlockResponse{
			ID:          u.ID,
			UserID:      u.UserID,
			MilestoneID: u.MilestoneID,
			UnlockedAt:  u.UnlockedAt,
			Shared:      u.Shared,
		}
		if u.Milestone != nil {
			m := toMilestoneResponse(u.Milestone)
			out[i].Milestone = &m
		}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
