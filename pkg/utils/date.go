package utils

import (
	"fmt"
	"time"
)

const DateLayout = time.DateOnly

// ParseDate interpreta YYYY-MM-DD no fuso informado. Texto vazio retorna nil.
func ParseDate(dateStr string, loc *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if loc == nil {
		loc = time.UTC
	}

	parsed, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, esperado %s: %w", dateStr, DateLayout, err)
	}

	date := StartOfDate(parsed.Year(), parsed.Month(), parsed.Day(), loc)
	return &date, nil
}

// StartOfDate retorna o primeiro instante do dia civil em loc. Dias fora do intervalo
// são normalizados como em time.Date (32 de janeiro vira 1º de fevereiro). Nos fusos em
// que o horário de verão começa à meia-noite, o dia começa à 01:00.
func StartOfDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	year, month, day = time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Date()

	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if start.Day() != day {
		// a meia-noite não existe e time.Date voltou para o dia anterior
		if _, end := start.ZoneBounds(); !end.IsZero() {
			start = end.In(loc)
		}
	}
	return start
}

// FormatDate formata a data no padrão YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
