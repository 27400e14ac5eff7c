package domain

import "time"

const (
	DefaultAppleCareGoalPercent    = 60
	DefaultBusinessLeadsGoal       = 2
	DefaultConnectivityGoalPercent = 75
)

// GoalSettings são as metas diárias de um vendedor
type GoalSettings struct {
	OwnerID                  string    `json:"ownerId,omitempty"`
	AppleCareGoalPercent     int       `json:"appleCareGoalPercent"`
	BusinessLeadsGoal        int       `json:"businessLeadsGoal"`
	ConnectivityGoalPercent  int       `json:"connectivityGoalPercent"`
	ShowGoalsInSummaryView   bool      `json:"showGoalsInSummaryView"`
	ShowSharingInSummaryView bool      `json:"showSharingInSummaryView"`
	UpdatedAt                time.Time `json:"updatedAt,omitempty"`
}

func DefaultGoalSettings() GoalSettings {
	return GoalSettings{
		AppleCareGoalPercent:     DefaultAppleCareGoalPercent,
		BusinessLeadsGoal:        DefaultBusinessLeadsGoal,
		ConnectivityGoalPercent:  DefaultConnectivityGoalPercent,
		ShowGoalsInSummaryView:   true,
		ShowSharingInSummaryView: true,
	}
}

// GoalProgress indica quais metas foram atingidas no período
type GoalProgress struct {
	AppleCareMet     bool   `json:"appleCareMet"`
	BusinessLeadsMet bool   `json:"businessLeadsMet"`
	ConnectivityMet  bool   `json:"connectivityMet"`
	GoalsMet         int    `json:"goalsMet"`
	Message          string `json:"message"`
}
