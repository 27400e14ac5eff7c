package domain

import "time"

type DeviceAppleCare struct {
	DeviceType  DeviceType `json:"deviceType"`
	Numerator   int        `json:"numerator"`
	Denominator int        `json:"denominator"`
	Percent     int        `json:"percent"`
}

// TodaySummary agrega as métricas do dia corrente
type TodaySummary struct {
	Date                time.Time         `json:"date"`
	Transactions        int               `json:"transactions"`
	Devices             int               `json:"devices"`
	AppleCareNumerator  int               `json:"appleCareNumerator"`
	AppleCarePercent    int               `json:"appleCarePercent"`
	AppleCareByDevice   []DeviceAppleCare `json:"appleCareByDevice"`
	BusinessLeads       int               `json:"businessLeads"`
	ConnectedUnits      int               `json:"connectedUnits"`
	ConnectivityPercent int               `json:"connectivityPercent"`
	Goals               *GoalSettings     `json:"goals,omitempty"`
	Progress            *GoalProgress     `json:"progress,omitempty"`
}

type WeekdaySummary struct {
	Weekday             time.Weekday `json:"weekday"`
	Date                time.Time    `json:"date"`
	AppleCarePercent    int          `json:"appleCarePercent"`
	BusinessLeads       int          `json:"businessLeads"`
	ConnectivityPercent int          `json:"connectivityPercent"`
}

// WeekSummary agrega as métricas da semana corrente, de domingo a sábado
type WeekSummary struct {
	StartDate           time.Time        `json:"startDate"`
	EndDate             time.Time        `json:"endDate"`
	Days                []WeekdaySummary `json:"days"`
	AppleCarePercent    int              `json:"appleCarePercent"`
	BusinessLeads       int              `json:"businessLeads"`
	AverageLeadsPerDay  float64          `json:"averageLeadsPerDay"`
	ConnectivityPercent int              `json:"connectivityPercent"`
}

type GraphStat string

const (
	GraphStatAppleCare    GraphStat = "applecare"
	GraphStatLeads        GraphStat = "leads"
	GraphStatConnectivity GraphStat = "connectivity"
)

type GraphScale string

const (
	GraphScaleWeekly  GraphScale = "weekly"
	GraphScaleMonthly GraphScale = "monthly"
	GraphScaleYearly  GraphScale = "yearly"
)

type GraphBar struct {
	Label  string  `json:"label"`
	Value  int     `json:"value"`
	Height float64 `json:"height"`
}

// GraphReport representa o gráfico de barras de uma métrica em um período
type GraphReport struct {
	Stat        GraphStat          `json:"stat"`
	Scale       GraphScale         `json:"scale"`
	Offset      int                `json:"offset"`
	Description string             `json:"description"`
	Bars        []GraphBar         `json:"bars"`
	Stats       map[string]float64 `json:"stats"`
}

type LifetimeSummary struct {
	Devices             int     `json:"devices"`
	AppleCarePercent    int     `json:"appleCarePercent"`
	BusinessLeads       int     `json:"businessLeads"`
	AverageLeadsPerDay  float64 `json:"averageLeadsPerDay"`
	ConnectedUnits      int     `json:"connectedUnits"`
	ConnectivityPercent int     `json:"connectivityPercent"`
}

// DailySnapshot guarda as métricas calculadas de um vendedor em um dia
type DailySnapshot struct {
	OwnerID              string    `json:"ownerId"`
	Day                  string    `json:"day"`
	Devices              int       `json:"devices"`
	AppleCareNumerator   int       `json:"appleCareNumerator"`
	AppleCareDenominator int       `json:"appleCareDenominator"`
	AppleCarePercent     int       `json:"appleCarePercent"`
	BusinessLeads        int       `json:"businessLeads"`
	ConnectedUnits       int       `json:"connectedUnits"`
	IPhoneUnits          int       `json:"iPhoneUnits"`
	ConnectivityPercent  int       `json:"connectivityPercent"`
	UpdatedAt            time.Time `json:"updatedAt,omitempty"`
}
