package booking

import "time"

// DayWindow contém os quatro instantes do expediente ancorados à
// meia-noite local do dia pedido. Todos usam a mesma âncora, então as
// comparações entre eles são sempre bem ordenadas.
type DayWindow struct {
	DayStart   time.Time
	DayEnd     time.Time
	BreakStart time.Time
	BreakEnd   time.Time
}

// BuildDayWindow projeta os horários de WorkingHours no dia informado.
// Função pura; falha apenas com WorkingHours malformado, que deveria
// ter sido rejeitado no boot por Validate.
func BuildDayWindow(day time.Time, wh WorkingHours) (DayWindow, error) {
	dayStart, err := atTimeOfDay(day, wh.Start)
	if err != nil {
		return DayWindow{}, err
	}
	dayEnd, err := atTimeOfDay(day, wh.End)
	if err != nil {
		return DayWindow{}, err
	}
	breakStart, err := atTimeOfDay(day, wh.BreakStart)
	if err != nil {
		return DayWindow{}, err
	}
	breakEnd, err := atTimeOfDay(day, wh.BreakEnd)
	if err != nil {
		return DayWindow{}, err
	}

	return DayWindow{
		DayStart:   dayStart,
		DayEnd:     dayEnd,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
	}, nil
}

// SlotEnd calcula o fim de um slot a partir do início e da duração do serviço.
func SlotEnd(start time.Time, durationMin int) time.Time {
	return start.Add(time.Duration(durationMin) * time.Minute)
}

func atTimeOfDay(day time.Time, hm string) (time.Time, error) {
	t, err := parseHM(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}
