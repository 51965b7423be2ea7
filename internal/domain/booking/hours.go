package booking

import (
	"fmt"
	"time"
)

// WorkingHours é configuração global do processo (não por barbeiro).
// Horários no formato "15:04". Deve ser validada uma única vez no boot.
type WorkingHours struct {
	Start      string
	End        string
	BreakStart string
	BreakEnd   string
	Weekdays   map[time.Weekday]bool
}

// Validate garante que os horários são parseáveis e bem ordenados:
// start < breakStart < breakEnd < end.
func (wh WorkingHours) Validate() error {
	start, err := parseHM(wh.Start)
	if err != nil {
		return fmt.Errorf("working hours: start: %w", err)
	}
	end, err := parseHM(wh.End)
	if err != nil {
		return fmt.Errorf("working hours: end: %w", err)
	}
	breakStart, err := parseHM(wh.BreakStart)
	if err != nil {
		return fmt.Errorf("working hours: break start: %w", err)
	}
	breakEnd, err := parseHM(wh.BreakEnd)
	if err != nil {
		return fmt.Errorf("working hours: break end: %w", err)
	}

	if !start.Before(breakStart) || !breakStart.Before(breakEnd) || !breakEnd.Before(end) {
		return fmt.Errorf(
			"working hours: esperado start < breakStart < breakEnd < end, recebido %s %s %s %s",
			wh.Start, wh.BreakStart, wh.BreakEnd, wh.End,
		)
	}

	if len(wh.Weekdays) == 0 {
		return fmt.Errorf("working hours: nenhum dia da semana ativo")
	}

	return nil
}

func (wh WorkingHours) IsActiveDay(d time.Weekday) bool {
	return wh.Weekdays[d]
}

func parseHM(hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, fmt.Errorf("horário inválido %q", hm)
	}
	return t, nil
}
