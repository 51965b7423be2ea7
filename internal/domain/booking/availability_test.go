package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

func defaultHours() WorkingHours {
	return WorkingHours{
		Start:      "09:00",
		End:        "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		Weekdays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
	}
}

// segunda-feira
func testDay() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func TestAvailableSlots_FullDayNoBookings(t *testing.T) {
	day := testDay()

	slots, err := AvailableSlots(day, 30, defaultHours(), nil)
	require.NoError(t, err)

	// 09:00–12:00 são 6 slots, 13:00–18:00 são 10
	require.Len(t, slots, 16)
	assert.Equal(t, at(day, 9, 0), slots[0])
	assert.Equal(t, at(day, 17, 30), slots[len(slots)-1])

	for _, s := range slots {
		end := SlotEnd(s, 30)
		assert.False(t, Overlaps(s, end, at(day, 12, 0), at(day, 13, 0)),
			"slot %s invade o almoço", s.Format("15:04"))
		assert.False(t, end.After(at(day, 18, 0)),
			"slot %s termina após o expediente", s.Format("15:04"))
	}
}

func TestAvailableSlots_ExistingBookingBlocksSlot(t *testing.T) {
	day := testDay()

	existing := []models.Booking{
		{
			ID:          "b-1",
			ServiceName: "Corte Social",
			ClientName:  "Ana",
			BarberName:  "Enzo",
			StartTime:   at(day, 10, 0),
			EndTime:     at(day, 10, 30),
		},
	}

	slots, err := AvailableSlots(day, 30, defaultHours(), existing)
	require.NoError(t, err)

	assert.NotContains(t, slots, at(day, 10, 0))
	assert.Contains(t, slots, at(day, 9, 30))
	assert.Contains(t, slots, at(day, 10, 30))
	assert.Len(t, slots, 15)
}

func TestAvailableSlots_LongServiceStopsBeforeClosing(t *testing.T) {
	day := testDay()

	slots, err := AvailableSlots(day, 60, defaultHours(), nil)
	require.NoError(t, err)

	// 17:30 + 60min = 18:30 > fechamento; último válido é 17:00
	assert.NotContains(t, slots, at(day, 17, 30))
	assert.Equal(t, at(day, 17, 0), slots[len(slots)-1])

	// 60min também não cabe encostado no almoço (11:30–12:30)
	assert.NotContains(t, slots, at(day, 11, 30))
	assert.Contains(t, slots, at(day, 11, 0))
}

func TestAvailableSlots_OddDurationKeepsHalfHourCadence(t *testing.T) {
	day := testDay()

	// serviço de 40min: início continua alinhado em 30min, o fim pode
	// cair em offset quebrado — isso é aceito
	slots, err := AvailableSlots(day, 40, defaultHours(), nil)
	require.NoError(t, err)

	assert.Contains(t, slots, at(day, 9, 0))
	assert.Contains(t, slots, at(day, 9, 30))
	// 11:30 + 40min = 12:10, invade o almoço
	assert.NotContains(t, slots, at(day, 11, 30))
	// último candidato viável: 17:20 não é alinhado; 17:00 + 40 = 17:40 ok
	assert.Contains(t, slots, at(day, 17, 0))
	assert.NotContains(t, slots, at(day, 17, 30))
}

func TestAvailableSlots_InactiveWeekdayIsEmpty(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	slots, err := AvailableSlots(sunday, 30, defaultHours(), nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlots_NoSlotOverlapsAnyBooking(t *testing.T) {
	day := testDay()

	existing := []models.Booking{
		{ID: "b-1", ServiceName: "s", ClientName: "c", BarberName: "b",
			StartTime: at(day, 9, 30), EndTime: at(day, 10, 30)},
		{ID: "b-2", ServiceName: "s", ClientName: "c", BarberName: "b",
			StartTime: at(day, 15, 0), EndTime: at(day, 16, 0)},
	}

	slots, err := AvailableSlots(day, 30, defaultHours(), existing)
	require.NoError(t, err)

	for _, s := range slots {
		end := SlotEnd(s, 30)
		for _, b := range existing {
			assert.False(t, Overlaps(s, end, b.StartTime, b.EndTime),
				"slot %s conflita com reserva %s", s.Format("15:04"), b.ID)
		}
	}
}

func TestAvailableSlots_InvalidDuration(t *testing.T) {
	_, err := AvailableSlots(testDay(), 0, defaultHours(), nil)
	assert.Error(t, err)
}

func TestAvailableSlots_AdjacentBookingDoesNotBlock(t *testing.T) {
	day := testDay()

	// intervalos semiabertos: reserva terminando 10:00 não bloqueia
	// slot começando 10:00
	existing := []models.Booking{
		{ID: "b-1", ServiceName: "s", ClientName: "c", BarberName: "b",
			StartTime: at(day, 9, 30), EndTime: at(day, 10, 0)},
	}

	slots, err := AvailableSlots(day, 30, defaultHours(), existing)
	require.NoError(t, err)

	assert.Contains(t, slots, at(day, 10, 0))
	assert.NotContains(t, slots, at(day, 9, 30))
}
