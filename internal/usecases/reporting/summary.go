package reporting

import (
	"time"

	"github.com/vfg2006/metrics-api/internal/aggregation"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/pkg/utils"
)

const (
	messageNoGoals    = "It's a great time to get started on your goals! You can do it!"
	messageOneGoal    = "One down, two to go! Keep going, you got this!"
	messageTwoGoals   = "You only have one goal to go! You're almost there!"
	messageThreeGoals = "All your goals are green right now! Great job, you did it!"
)

// BuildTodaySummary calcula o resumo do dia corrente a partir do conjunto completo.
// Com goals nil, o resumo não traz metas nem progresso.
func BuildTodaySummary(set aggregation.Set, goals *domain.GoalSettings) domain.TodaySummary {
	today := set.Sub(set.Today())

	byDevice := make([]domain.DeviceAppleCare, 0, len(domain.Devices))
	for _, device := range domain.Devices {
		byDevice = append(byDevice, domain.DeviceAppleCare{
			DeviceType:  device,
			Numerator:   today.CustomAppleCareNumerator(device),
			Denominator: today.CustomAppleCareDenominator(device),
			Percent:     today.CustomAppleCarePercent(device),
		})
	}

	summary := domain.TodaySummary{
		Date:                set.Calendar().StartOfDay(set.Calendar().Now()),
		Transactions:        today.Len(),
		Devices:             len(today.WithDevice()),
		AppleCareNumerator:  today.AppleCareNumerator(),
		AppleCarePercent:    today.AppleCarePercent(),
		AppleCareByDevice:   byDevice,
		BusinessLeads:       today.NumBusinessLeads(),
		ConnectedUnits:      today.ConnectedUnits(),
		ConnectivityPercent: today.ConnectivityPercent(),
	}

	if goals != nil && goals.ShowGoalsInSummaryView {
		progress := EvaluateGoals(summary, *goals)
		summary.Goals = goals
		summary.Progress = &progress
	}

	return summary
}

// EvaluateGoals compara o resumo com as metas; uma meta é atingida quando o valor a alcança
func EvaluateGoals(summary domain.TodaySummary, goals domain.GoalSettings) domain.GoalProgress {
	progress := domain.GoalProgress{
		AppleCareMet:     summary.AppleCarePercent >= goals.AppleCareGoalPercent,
		BusinessLeadsMet: summary.BusinessLeads >= goals.BusinessLeadsGoal,
		ConnectivityMet:  summary.ConnectivityPercent >= goals.ConnectivityGoalPercent,
	}

	for _, met := range []bool{progress.AppleCareMet, progress.BusinessLeadsMet, progress.ConnectivityMet} {
		if met {
			progress.GoalsMet++
		}
	}

	switch progress.GoalsMet {
	case 0:
		progress.Message = messageNoGoals
	case 1:
		progress.Message = messageOneGoal
	case 2:
		progress.Message = messageTwoGoals
	case 3:
		progress.Message = messageThreeGoals
	}

	return progress
}

// BuildWeekSummary calcula a semana corrente dia a dia, de domingo a sábado
func BuildWeekSummary(set aggregation.Set) domain.WeekSummary {
	cal := set.Calendar()
	now := cal.Now()

	days := make([]domain.WeekdaySummary, 0, 7)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := set.Sub(set.ThisWeek(weekday))
		days = append(days, domain.WeekdaySummary{
			Weekday:             weekday,
			Date:                cal.WeekdayInCurrentWeek(weekday),
			AppleCarePercent:    day.AppleCarePercent(),
			BusinessLeads:       day.NumBusinessLeads(),
			ConnectivityPercent: day.ConnectivityPercent(),
		})
	}

	week := set.Sub(set.AllWeek())

	return domain.WeekSummary{
		StartDate:           cal.StartOfWeek(now),
		EndDate:             cal.EndOfWeek(now),
		Days:                days,
		AppleCarePercent:    week.AppleCarePercent(),
		BusinessLeads:       week.NumBusinessLeads(),
		AverageLeadsPerDay:  week.AverageLeadsPerDay(),
		ConnectivityPercent: week.ConnectivityPercent(),
	}
}

func BuildLifetimeSummary(set aggregation.Set) domain.LifetimeSummary {
	return domain.LifetimeSummary{
		Devices:             len(set.WithDevice()),
		AppleCarePercent:    set.AppleCarePercent(),
		BusinessLeads:       set.NumBusinessLeads(),
		AverageLeadsPerDay:  set.AverageLeadsPerDay(),
		ConnectedUnits:      set.ConnectedUnits(),
		ConnectivityPercent: set.ConnectivityPercent(),
	}
}

// BuildDailySnapshot calcula as métricas do dia informado para o vendedor
func BuildDailySnapshot(set aggregation.Set, ownerID string, day time.Time) domain.DailySnapshot {
	cal := set.Calendar()
	target := set.Sub(set.OnDay(day))

	return domain.DailySnapshot{
		OwnerID:              ownerID,
		Day:                  utils.FormatDate(cal.StartOfDay(day)),
		Devices:              len(target.WithDevice()),
		AppleCareNumerator:   target.AppleCareNumerator(),
		AppleCareDenominator: target.AppleCareDenominator(),
		AppleCarePercent:     target.AppleCarePercent(),
		BusinessLeads:        target.NumBusinessLeads(),
		ConnectedUnits:       target.ConnectedUnits(),
		IPhoneUnits:          target.IPhoneUnits(),
		ConnectivityPercent:  target.ConnectivityPercent(),
		UpdatedAt:            cal.Now().UTC(),
	}
}
