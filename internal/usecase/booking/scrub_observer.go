package booking

import (
	"log"

	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/metrics"
)

// observeScrub dá visibilidade ao que a limpeza descartou. Nunca
// interrompe a leitura: o caminho degrada para "menos registros, porém
// consistentes".
func observeScrub(where string, report domain.ScrubReport) {
	if !report.HasIssues() {
		return
	}

	if report.Duplicates > 0 {
		metrics.ScrubbedDuplicates.Add(float64(report.Duplicates))
		log.Printf(
			"scrub[%s]: %d registro(s) duplicado(s) descartado(s): %v",
			where, report.Duplicates, report.DuplicateIDs,
		)
	}

	if report.Invalid > 0 {
		metrics.ScrubbedInvalid.Add(float64(report.Invalid))
		log.Printf(
			"scrub[%s]: %d registro(s) malformado(s) descartado(s)",
			where, report.Invalid,
		)
	}
}
