package booking

import (
	"sort"
	"time"

	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

// ===============================
// Janela de tempo dos relatórios
// ===============================

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// WindowStart devolve o início da janela pedida, no fuso de now.
// A semana começa na segunda-feira, meia-noite local; domingo pertence
// à semana iniciada na segunda anterior.
func WindowStart(p Period, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodWeek:
		offset := int(now.Weekday()) - 1
		if offset < 0 {
			offset = 6
		}
		return today.AddDate(0, 0, -offset)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return today
	}
}

// ===============================
// Agregações do dashboard
// ===============================

type BarberRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TotalRevenue      float64         `json:"total_revenue"`
	TotalBookings     int             `json:"total_bookings"`
	UniqueClients     int             `json:"unique_clients"`
	RevenueByBarber   []BarberRevenue `json:"revenue_by_barber"`
	ServicePopularity []ServiceCount  `json:"service_popularity"`
}

// BuildDashboardStats agrega os registros a partir de from.
//
// Contrato duro de todo consumidor de relatório: receita, ranking de
// barbeiros, popularidade de serviço e clientes únicos consideram SÓ
// registros com AddedToDashboard (entregue E pago). TotalBookings é a
// contagem bruta do período, sem o gate.
//
// priceOf é o fallback de preço para registros antigos gravados sem
// price (busca o preço de tabela atual do serviço); pode ser nil.
func BuildDashboardStats(
	records []models.Booking,
	from time.Time,
	priceOf func(serviceID string) float64,
) DashboardStats {

	stats := DashboardStats{
		RevenueByBarber:   []BarberRevenue{},
		ServicePopularity: []ServiceCount{},
	}

	revenueByBarber := map[string]float64{}
	serviceCounts := map[string]int{}
	clients := map[string]struct{}{}

	for _, b := range records {
		if b.StartTime.Before(from) {
			continue
		}

		stats.TotalBookings++

		if !b.AddedToDashboard {
			continue
		}

		price := b.Price
		if price == 0 && priceOf != nil {
			price = priceOf(b.ServiceID)
		}

		stats.TotalRevenue += price
		revenueByBarber[b.BarberName] += price
		serviceCounts[b.ServiceName]++
		clients[b.ClientName] = struct{}{}
	}

	stats.UniqueClients = len(clients)

	for name, revenue := range revenueByBarber {
		stats.RevenueByBarber = append(stats.RevenueByBarber, BarberRevenue{Name: name, Revenue: revenue})
	}
	sort.Slice(stats.RevenueByBarber, func(i, j int) bool {
		if stats.RevenueByBarber[i].Revenue != stats.RevenueByBarber[j].Revenue {
			return stats.RevenueByBarber[i].Revenue > stats.RevenueByBarber[j].Revenue
		}
		return stats.RevenueByBarber[i].Name < stats.RevenueByBarber[j].Name
	})

	for name, count := range serviceCounts {
		stats.ServicePopularity = append(stats.ServicePopularity, ServiceCount{Name: name, Count: count})
	}
	sort.Slice(stats.ServicePopularity, func(i, j int) bool {
		if stats.ServicePopularity[i].Count != stats.ServicePopularity[j].Count {
			return stats.ServicePopularity[i].Count > stats.ServicePopularity[j].Count
		}
		return stats.ServicePopularity[i].Name < stats.ServicePopularity[j].Name
	})

	return stats
}

// ===============================
// Base de clientes
// ===============================

type ClientStat struct {
	Name            string    `json:"name"`
	Visits          int       `json:"visits"`
	TotalSpent      float64   `json:"total_spent"`
	LastVisit       time.Time `json:"last_visit"`
	FavoriteService string    `json:"favorite_service"`
}

// BuildClientStats monta a base de clientes a partir dos registros com
// gate, ordenada por visitas (desc).
func BuildClientStats(records []models.Booking) []ClientStat {
	type acc struct {
		stat     ClientStat
		services map[string]int
		order    []string
	}

	byClient := map[string]*acc{}
	names := []string{}

	for _, b := range records {
		if !b.AddedToDashboard {
			continue
		}

		a, ok := byClient[b.ClientName]
		if !ok {
			a = &acc{
				stat:     ClientStat{Name: b.ClientName},
				services: map[string]int{},
			}
			byClient[b.ClientName] = a
			names = append(names, b.ClientName)
		}

		a.stat.Visits++
		a.stat.TotalSpent += b.Price
		if b.StartTime.After(a.stat.LastVisit) {
			a.stat.LastVisit = b.StartTime
		}
		if _, ok := a.services[b.ServiceName]; !ok {
			a.order = append(a.order, b.ServiceName)
		}
		a.services[b.ServiceName]++
	}

	out := make([]ClientStat, 0, len(byClient))
	for _, name := range names {
		a := byClient[name]

		// serviço favorito: o mais frequente; empate fica com o primeiro visto
		best, bestCount := "", 0
		for _, svc := range a.order {
			if a.services[svc] > bestCount {
				best, bestCount = svc, a.services[svc]
			}
		}
		a.stat.FavoriteService = best

		out = append(out, a.stat)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Visits > out[j].Visits
	})

	return out
}
