package booking

import "github.com/BarbeariaNavalha/booking-engine/internal/models"

// ScrubReport descreve o que Clean descartou. Relatório fora de banda:
// nunca interrompe uma leitura, só alimenta log/métricas.
type ScrubReport struct {
	Duplicates   int
	DuplicateIDs []string
	Invalid      int
}

func (r ScrubReport) HasIssues() bool {
	return r.Duplicates > 0 || r.Invalid > 0
}

// Clean é a barreira defensiva contra snapshots inconsistentes vindos
// do store (escritas concorrentes, falhas parciais). Passada única,
// preserva a ordem dos sobreviventes e é idempotente:
// Clean(Clean(x)) == Clean(x).
//
// Regras, na ordem:
//  1. registro sem id é descartado (invalid);
//  2. id repetido é descartado, mantendo a primeira ocorrência (duplicate);
//  3. registro sem serviceName, clientName ou barberName é descartado (invalid).
func Clean(raw []models.Booking) ([]models.Booking, ScrubReport) {
	var report ScrubReport

	seen := make(map[string]struct{}, len(raw))
	out := make([]models.Booking, 0, len(raw))

	for _, b := range raw {
		if b.ID == "" {
			report.Invalid++
			continue
		}

		if _, dup := seen[b.ID]; dup {
			report.Duplicates++
			report.DuplicateIDs = append(report.DuplicateIDs, b.ID)
			continue
		}
		seen[b.ID] = struct{}{}

		if b.ServiceName == "" || b.ClientName == "" || b.BarberName == "" {
			report.Invalid++
			continue
		}

		out = append(out, b)
	}

	return out, report
}
