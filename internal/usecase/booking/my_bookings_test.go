package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
)

func TestMyBookings_FormattingDoesNotHideRecords(t *testing.T) {
	repo := newFakeRepo()
	create := newCreateUC(repo)
	day := testDay()

	// cliente agenda com o telefone formatado
	_, err := create.Execute(context.Background(), CreateBookingInput{
		ServiceID:   "cut",
		BarberID:    "b1",
		Date:        day,
		StartTime:   at(day, 10, 0),
		ClientName:  "Ana",
		ClientPhone: "(11) 98765-4321",
	})
	require.NoError(t, err)

	// o registro guarda só os dígitos
	require.Len(t, repo.bookings, 1)
	assert.Equal(t, "11987654321", repo.bookings[0].ClientPhone)

	// e consulta depois digitando de outro jeito
	uc := NewListMyBookings(repo)
	records, err := uc.Execute(context.Background(), "11 98765 4321")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Ana", records[0].ClientName)
}

func TestMyBookings_MissingPhone(t *testing.T) {
	uc := NewListMyBookings(newFakeRepo())

	// sem nenhum dígito não há o que buscar
	_, err := uc.Execute(context.Background(), " ( ) - ")

	assert.True(t, httperr.IsBusiness(err, "missing_phone"))
}
