package reporting

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/metrics-api/internal/aggregation"
	"github.com/vfg2006/metrics-api/internal/domain"
)

// graphBars é a quantidade de barras de qualquer gráfico
const graphBars = 7

var weekdayLabels = [graphBars]string{"S", "M", "T", "W", "T", "F", "S"}

// divisor de altura das barras de leads por escala
var leadsScale = map[domain.GraphScale]float64{
	domain.GraphScaleWeekly:  5,
	domain.GraphScaleMonthly: 35,
	domain.GraphScaleYearly:  100,
}

func ParseGraphStat(s string) (domain.GraphStat, error) {
	stat := domain.GraphStat(s)
	switch stat {
	case domain.GraphStatAppleCare, domain.GraphStatLeads, domain.GraphStatConnectivity:
		return stat, nil
	}
	return "", newValidationError(ErrInvalidGraphRequest, "stat")
}

func ParseGraphScale(s string) (domain.GraphScale, error) {
	scale := domain.GraphScale(s)
	switch scale {
	case domain.GraphScaleWeekly, domain.GraphScaleMonthly, domain.GraphScaleYearly:
		return scale, nil
	}
	return "", newValidationError(ErrInvalidGraphRequest, "scale")
}

// BuildGraph monta as sete barras da métrica para a escala e o deslocamento informados.
// Barras mensais e anuais vão do período mais antigo para o mais recente.
func BuildGraph(set aggregation.Set, stat domain.GraphStat, scale domain.GraphScale, offset int) (*domain.GraphReport, error) {
	if offset < 0 {
		return nil, newValidationError(ErrInvalidGraphRequest, "offset")
	}
	if _, err := ParseGraphStat(string(stat)); err != nil {
		return nil, err
	}
	if _, err := ParseGraphScale(string(scale)); err != nil {
		return nil, err
	}

	periods, labels, whole := graphPeriods(set, scale, offset)

	bars := make([]domain.GraphBar, 0, graphBars)
	for i, period := range periods {
		value := statValue(period, stat)
		bars = append(bars, domain.GraphBar{
			Label:  labels[i],
			Value:  value,
			Height: barHeight(stat, scale, value),
		})
	}

	return &domain.GraphReport{
		Stat:        stat,
		Scale:       scale,
		Offset:      offset,
		Description: describePeriod(scale, offset),
		Bars:        bars,
		Stats:       periodStats(whole, stat),
	}, nil
}

// graphPeriods devolve os sete subconjuntos, seus rótulos e o conjunto do período inteiro
func graphPeriods(set aggregation.Set, scale domain.GraphScale, offset int) ([]aggregation.Set, []string, aggregation.Set) {
	periods := make([]aggregation.Set, 0, graphBars)
	labels := make([]string, 0, graphBars)
	all := make([]domain.Transaction, 0)

	switch scale {
	case domain.GraphScaleWeekly:
		week := set.Sub(set.WeekJump(offset))
		for i, bucket := range week.ByWeekday() {
			periods = append(periods, set.Sub(bucket))
			labels = append(labels, weekdayLabels[i])
		}
		return periods, labels, week

	case domain.GraphScaleMonthly:
		base := graphBars * offset
		for jump := base + graphBars - 1; jump >= base; jump-- {
			week := set.WeekJump(jump)
			periods = append(periods, set.Sub(week))
			labels = append(labels, strconv.Itoa(jump)+"w")
			all = append(all, week...)
		}

	default:
		base := graphBars * offset
		for jump := base + graphBars - 1; jump >= base; jump-- {
			month := set.MonthJump(jump)
			periods = append(periods, set.Sub(month))
			labels = append(labels, strconv.Itoa(jump)+"m")
			all = append(all, month...)
		}
	}

	return periods, labels, set.Sub(all)
}

func statValue(period aggregation.Set, stat domain.GraphStat) int {
	switch stat {
	case domain.GraphStatAppleCare:
		return period.AppleCarePercent()
	case domain.GraphStatLeads:
		return period.NumBusinessLeads()
	default:
		return period.ConnectivityPercent()
	}
}

func barHeight(stat domain.GraphStat, scale domain.GraphScale, value int) float64 {
	if stat == domain.GraphStatLeads {
		return float64(value) / leadsScale[scale]
	}
	return float64(value) / 100
}

func periodStats(whole aggregation.Set, stat domain.GraphStat) map[string]float64 {
	switch stat {
	case domain.GraphStatAppleCare:
		return map[string]float64{
			"numerator": float64(whole.AppleCareNumerator()),
			"devices":   float64(len(whole.WithDevice())),
			"percent":   float64(whole.AppleCarePercent()),
		}
	case domain.GraphStatLeads:
		return map[string]float64{
			"total":   float64(whole.NumBusinessLeads()),
			"average": whole.AverageLeadsPerDay(),
		}
	default:
		return map[string]float64{
			"connected": float64(whole.ConnectedUnits()),
			"devices":   float64(len(whole.WithDevice())),
			"percent":   float64(whole.ConnectivityPercent()),
		}
	}
}

func describePeriod(scale domain.GraphScale, offset int) string {
	switch scale {
	case domain.GraphScaleWeekly:
		switch offset {
		case 0:
			return "This Week"
		case 1:
			return "1 Week Ago"
		default:
			return fmt.Sprintf("%d Weeks Ago", offset)
		}
	case domain.GraphScaleMonthly:
		return fmt.Sprintf("%d - %d Weeks Ago", offset*graphBars, offset*graphBars+graphBars-1)
	default:
		return fmt.Sprintf("%d - %d Months Ago", offset*graphBars, offset*graphBars+graphBars-1)
	}
}
