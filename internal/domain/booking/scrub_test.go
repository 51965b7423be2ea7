package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

func validRecord(id string) models.Booking {
	return models.Booking{
		ID:          id,
		ServiceName: "Corte Social",
		ClientName:  "Ana",
		BarberName:  "Enzo",
	}
}

func TestClean_KeepsFirstDuplicate(t *testing.T) {
	first := validRecord("x1")
	first.ClientName = "Primeira"
	second := validRecord("x1")
	second.ClientName = "Segunda"

	out, report := Clean([]models.Booking{first, second})

	require.Len(t, out, 1)
	assert.Equal(t, "Primeira", out[0].ClientName)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, []string{"x1"}, report.DuplicateIDs)
	assert.Equal(t, 0, report.Invalid)
}

func TestClean_DropsMalformedRecords(t *testing.T) {
	noID := validRecord("")
	noService := validRecord("x2")
	noService.ServiceName = ""
	noClient := validRecord("x3")
	noClient.ClientName = ""
	noBarber := validRecord("x4")
	noBarber.BarberName = ""

	out, report := Clean([]models.Booking{noID, validRecord("x1"), noService, noClient, noBarber})

	require.Len(t, out, 1)
	assert.Equal(t, "x1", out[0].ID)
	assert.Equal(t, 4, report.Invalid)
	assert.Equal(t, 0, report.Duplicates)
}

func TestClean_PreservesSurvivorOrder(t *testing.T) {
	in := []models.Booking{
		validRecord("c"),
		validRecord("a"),
		validRecord("c"),
		validRecord("b"),
	}

	out, _ := Clean(in)

	ids := make([]string, len(out))
	for i, b := range out {
		ids[i] = b.ID
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestClean_Idempotent(t *testing.T) {
	in := []models.Booking{
		validRecord("a"),
		validRecord("a"),
		validRecord(""),
		validRecord("b"),
	}

	once, _ := Clean(in)
	twice, report := Clean(once)

	assert.Equal(t, once, twice)
	assert.False(t, report.HasIssues())
}

func TestClean_CountInvariant(t *testing.T) {
	in := []models.Booking{
		validRecord("a"),
		validRecord("a"),
		validRecord(""),
		validRecord("b"),
		validRecord("b"),
		validRecord("b"),
	}

	out, report := Clean(in)

	// sobreviventes + duplicados + inválidos == entrada
	assert.Equal(t, len(in), len(out)+report.Duplicates+report.Invalid)
}

func TestClean_EmptyInput(t *testing.T) {
	out, report := Clean(nil)

	assert.Empty(t, out)
	assert.False(t, report.HasIssues())
}
