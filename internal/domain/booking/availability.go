package booking

import (
	"fmt"
	"time"

	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

// Cadência fixa de 30min entre candidatos, independente da duração do
// serviço. Usar a duração como passo criaria buracos inalcançáveis na
// agenda quando durações diferentes se misturam no mesmo dia.
const SlotStepMinutes = 30

// Overlaps aplica a regra de sobreposição de intervalos semiabertos
// [aStart, aEnd) e [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// AvailableSlots enumera os inícios de slot ofertáveis para um dia,
// dada a duração do serviço e as reservas existentes do barbeiro no
// dia. O resultado é cronológico, finito e recalculado a cada chamada.
func AvailableSlots(
	day time.Time,
	durationMin int,
	wh WorkingHours,
	existing []models.Booking,
) ([]time.Time, error) {

	if durationMin <= 0 {
		return nil, fmt.Errorf("duração inválida: %d", durationMin)
	}

	if !wh.IsActiveDay(day.Weekday()) {
		return []time.Time{}, nil
	}

	w, err := BuildDayWindow(day, wh)
	if err != nil {
		return nil, err
	}

	slots := []time.Time{}
	step := SlotStepMinutes * time.Minute

	for cur := w.DayStart; ; cur = cur.Add(step) {
		end := SlotEnd(cur, durationMin)

		// Passou do fechamento: nenhum candidato posterior cabe também.
		if end.After(w.DayEnd) {
			break
		}

		// Pausa de almoço
		if Overlaps(cur, end, w.BreakStart, w.BreakEnd) {
			continue
		}

		if hasBookingConflict(cur, end, existing) {
			continue
		}

		slots = append(slots, cur)
	}

	return slots, nil
}

func hasBookingConflict(start, end time.Time, existing []models.Booking) bool {
	for _, b := range existing {
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}
