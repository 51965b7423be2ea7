package handlers

import (
	"time"

	"github.com/BarbeariaNavalha/booking-engine/internal/timezone"
)

// Todas as datas da API chegam como "YYYY-MM-DD" e são interpretadas
// no fuso da barbearia.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
}

func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(),
	)
}
