// Package calendar resolve janelas de tempo (dia, semana, mês) a partir de um relógio e fuso injetáveis.
// As semanas começam no domingo.
//
// A identidade de dias e semanas é calculada sobre a data civil no fuso configurado, nunca
// somando horas a um instante: em fusos com horário de verão nem todo dia tem 24 horas e
// nem toda meia-noite existe.
package calendar

import (
	"time"

	"github.com/vfg2006/metrics-api/pkg/utils"
)

// Clock retorna o instante atual
type Clock func() time.Time

// Calendar é imutável e seguro para uso concorrente
type Calendar struct {
	loc   *time.Location
	clock Clock
}

type Option func(*Calendar)

func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		if loc != nil {
			c.loc = loc
		}
	}
}

func WithClock(clock Clock) Option {
	return func(c *Calendar) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func New(opts ...Option) Calendar {
	c := Calendar{
		loc:   time.Local,
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// LoadLocation converte o nome do fuso configurado, aceitando vazio como horário local
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func (c Calendar) Location() *time.Location {
	return c.loc
}

func (c Calendar) Now() time.Time {
	return c.clock().In(c.loc)
}

// civil devolve a data de t no fuso do calendário, como meia-noite UTC
func (c Calendar) civil(t time.Time) time.Time {
	y, m, d := t.In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c Calendar) startOf(civil time.Time) time.Time {
	return utils.StartOfDate(civil.Year(), civil.Month(), civil.Day(), c.loc)
}

// StartOfDay retorna o primeiro instante do dia de t, que pode não ser meia-noite
func (c Calendar) StartOfDay(t time.Time) time.Time {
	return c.startOf(c.civil(t))
}

// AddDays retorna o início do dia n dias depois do dia de t
func (c Calendar) AddDays(t time.Time, n int) time.Time {
	return c.startOf(c.civil(t).AddDate(0, 0, n))
}

func (c Calendar) SameDay(a, b time.Time) bool {
	return c.civil(a).Equal(c.civil(b))
}

// StartOfWeek retorna o início do domingo da semana de t
func (c Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.civil(t)
	return c.startOf(day.AddDate(0, 0, -int(day.Weekday())))
}

// EndOfWeek retorna o início do sábado da semana de t
func (c Calendar) EndOfWeek(t time.Time) time.Time {
	return c.AddDays(c.StartOfWeek(t), 6)
}

// WeekdayInCurrentWeek retorna a data do dia da semana dentro da semana corrente (domingo a sábado).
// Domingo sempre resolve para o início da semana, inclusive quando hoje é domingo.
func (c Calendar) WeekdayInCurrentWeek(weekday time.Weekday) time.Time {
	return c.AddDays(c.StartOfWeek(c.Now()), int(weekday))
}

// WeekKey identifica uma semana pelo número e ano. A semana 1 é a que contém 1º de janeiro,
// então uma semana que cruza a virada do ano pertence ao ano novo.
type WeekKey struct {
	Year int
	Week int
}

func (c Calendar) WeekKeyOf(t time.Time) WeekKey {
	day := c.civil(t)
	saturday := day.AddDate(0, 0, int(time.Saturday-day.Weekday()))
	return WeekKey{
		Year: saturday.Year(),
		Week: (saturday.YearDay()-1)/7 + 1,
	}
}

func (c Calendar) SameWeek(a, b time.Time) bool {
	return c.WeekKeyOf(a) == c.WeekKeyOf(b)
}

func (c Calendar) SameMonth(a, b time.Time) bool {
	ay, am, _ := a.In(c.loc).Date()
	by, bm, _ := b.In(c.loc).Date()
	return ay == by && am == bm
}

// WeeksAgo retorna o início do dia de hoje n semanas atrás
func (c Calendar) WeeksAgo(n int) time.Time {
	return c.AddDays(c.Now(), -7*n)
}

// MonthsAgo retorna o primeiro dia do mês n meses antes do atual.
// A conta é feita sobre ano e mês para não transbordar dias (31/03 menos um mês é fevereiro).
func (c Calendar) MonthsAgo(n int) time.Time {
	return c.AddMonths(c.Now(), -n)
}

// AddMonths retorna o início do primeiro dia do mês n meses depois do mês de t
func (c Calendar) AddMonths(t time.Time, n int) time.Time {
	y, m, _ := t.In(c.loc).Date()
	return utils.StartOfDate(y, m+time.Month(n), 1, c.loc)
}
