// Package aggregation calcula as métricas de vendas sobre uma coleção de transações.
//
// Um Set é um valor imutável: os filtros devolvem novos slices e as métricas são
// recalculadas a cada chamada, sem cache e sem efeitos colaterais.
package aggregation

import (
	"time"

	"github.com/vfg2006/metrics-api/internal/calendar"
	"github.com/vfg2006/metrics-api/internal/domain"
	"github.com/vfg2006/metrics-api/pkg/utils"
)

type Set struct {
	cal          calendar.Calendar
	transactions []domain.Transaction
}

// New cria um Set sobre as transações, sem validar nem reordenar
func New(cal calendar.Calendar, transactions []domain.Transaction) Set {
	return Set{cal: cal, transactions: transactions}
}

// Sub cria um Set sobre um subconjunto usando o mesmo calendário
func (s Set) Sub(transactions []domain.Transaction) Set {
	return Set{cal: s.cal, transactions: transactions}
}

func (s Set) Calendar() calendar.Calendar {
	return s.cal
}

func (s Set) Len() int {
	return len(s.transactions)
}

// Transactions devolve uma cópia da coleção
func (s Set) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s Set) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range s.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s Set) count(keep func(domain.Transaction) bool) int {
	n := 0
	for _, t := range s.transactions {
		if keep(t) {
			n++
		}
	}
	return n
}

func (s Set) Today() []domain.Transaction {
	return s.OnDay(s.cal.Now())
}

// OnDay devolve as transações do mesmo dia de calendário de day
func (s Set) OnDay(day time.Time) []domain.Transaction {
	return s.filter(func(t domain.Transaction) bool {
		return s.cal.SameDay(t.Date, day)
	})
}

// ThisWeek devolve as transações do dia da semana informado dentro da semana corrente
func (s Set) ThisWeek(weekday time.Weekday) []domain.Transaction {
	return s.OnDay(s.cal.WeekdayInCurrentWeek(weekday))
}

func (s Set) AllWeek() []domain.Transaction {
	now := s.cal.Now()
	return s.filter(func(t domain.Transaction) bool {
		return s.cal.SameWeek(t.Date, now)
	})
}

// WeekJump devolve as transações da semana de n semanas atrás. WeekJump(0) equivale a AllWeek.
func (s Set) WeekJump(n int) []domain.Transaction {
	target := s.cal.WeeksAgo(n)
	return s.filter(func(t domain.Transaction) bool {
		return s.cal.SameWeek(t.Date, target)
	})
}

func (s Set) AllMonth() []domain.Transaction {
	now := s.cal.Now()
	return s.filter(func(t domain.Transaction) bool {
		return s.cal.SameMonth(t.Date, now)
	})
}

// MonthJump devolve as transações do mês de n meses atrás. MonthJump(0) equivale a AllMonth.
func (s Set) MonthJump(n int) []domain.Transaction {
	target := s.cal.MonthsAgo(n)
	return s.filter(func(t domain.Transaction) bool {
		return s.cal.SameMonth(t.Date, target)
	})
}

// WithDevice exclui as transações sem aparelho
func (s Set) WithDevice() []domain.Transaction {
	return s.filter(domain.Transaction.HasDevice)
}

// ByWeekday separa as transações em sete grupos, de domingo a sábado
func (s Set) ByWeekday() [7][]domain.Transaction {
	var buckets [7][]domain.Transaction
	for i := range buckets {
		buckets[i] = make([]domain.Transaction, 0)
	}

	loc := s.cal.Location()
	for _, t := range s.transactions {
		day := t.Date.In(loc).Weekday()
		buckets[day] = append(buckets[day], t)
	}

	return buckets
}

func (s Set) NumBusinessLeads() int {
	return s.count(func(t domain.Transaction) bool {
		return t.GotLead
	})
}

func (s Set) NumUniqueDays() int {
	days := make(map[time.Time]struct{})
	for _, t := range s.transactions {
		days[s.cal.StartOfDay(t.Date)] = struct{}{}
	}
	return len(days)
}

// AverageLeadsPerDay divide os leads pelos dias distintos, truncando em três casas decimais
func (s Set) AverageLeadsPerDay() float64 {
	days := s.NumUniqueDays()
	if days == 0 {
		return 0
	}
	return utils.Truncate(float64(s.NumBusinessLeads())/float64(days), 3)
}
