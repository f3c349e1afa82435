package analytics

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"medellin/server/internal/models"
)

func TestOriginDemographicsSummary(t *testing.T) {
	bookings := append(bookingRows(3, "France", 2), bookingRows(1, "Chile", 4)...)
	engine := NewEngine(nil, bookings)

	report := engine.originDemographics()

	assert.Equal(t, 4, report.ResumenEjecutivo.TotalReservas)
	assert.Equal(t, 10, report.ResumenEjecutivo.TotalPasajeros)
	assert.Equal(t, "France", report.ResumenEjecutivo.MercadoPrincipal)
	assert.Equal(t, "AAA", report.ResumenEjecutivo.CiudadPrincipal)
	assert.Equal(t, 2, report.MercadosOrigen.TotalPaisesUnicos)
}

func TestOriginDemographicsTieBreak(t *testing.T) {
	bookings := append(bookingRows(2, "Peru", 1), bookingRows(2, "Chile", 1)...)
	engine := NewEngine(nil, bookings)

	report := engine.originDemographics()
	if assert.Len(t, report.MercadosOrigen.Top10Paises, 2) {
		assert.Equal(t, "Chile", report.MercadosOrigen.Top10Paises[0].Nombre)
		assert.Equal(t, "Peru", report.MercadosOrigen.Top10Paises[1].Nombre)
	}
	assert.Equal(t, "Chile", report.ResumenEjecutivo.MercadoPrincipal)
}

func TestBusinessLeisurePercentages(t *testing.T) {
	bookings := bookingRows(4, "France", 1)
	for i := range bookings {
		if i < 3 {
			bookings[i].BusinessLeisure = strPtr("leisure")
		} else {
			bookings[i].BusinessLeisure = strPtr("business")
		}
	}
	engine := NewEngine(nil, bookings)

	report := engine.originDemographics()
	split := report.Segmentacion.BusinessLeisure
	if assert.NotNil(t, split) {
		assert.Equal(t, map[string]int{"leisure": 3, "business": 1}, split.Distribucion)
		assert.Equal(t, "75.0%", split.Porcentajes["leisure"])
		assert.Equal(t, "25.0%", split.Porcentajes["business"])

		onePlace := regexp.MustCompile(`^\d+\.\d%$`)
		for _, p := range split.Porcentajes {
			assert.Regexp(t, onePlace, p)
		}
	}
}

func TestGroupSizeBuckets(t *testing.T) {
	sizes := []int{1, 1, 2, 3, 5}
	bookings := make([]models.BookingRecord, 0, len(sizes))
	for _, s := range sizes {
		b := bookingRows(1, "France", 1)[0]
		b.NbPaxTogether = intPtr(s)
		bookings = append(bookings, b)
	}
	engine := NewEngine(nil, bookings)

	report := engine.originDemographics()
	groups := report.Segmentacion.TamanoGrupo
	if assert.NotNil(t, groups) {
		assert.Equal(t, 2, groups.ViajerosSolos)
		assert.Equal(t, 1, groups.Grupos2Personas)
		assert.Equal(t, 2, groups.Grupos3Plus)
		assert.InDelta(t, 2.4, groups.PromedioPasajeros, 0.001)
	}
}

func TestOptionalSectionsOmitted(t *testing.T) {
	engine := NewEngine(nil, bookingRows(2, "France", 1))
	report := engine.originDemographics()

	assert.Nil(t, report.PerfilAgencias)
	assert.Nil(t, report.Segmentacion.BusinessLeisure)
	assert.Nil(t, report.Segmentacion.TipoViaje)
}

func TestAgencyProfileMode(t *testing.T) {
	bookings := bookingRows(3, "France", 1)
	bookings[0].AgencyProfile = strPtr("online travel agency")
	bookings[1].AgencyProfile = strPtr("online travel agency")
	bookings[2].AgencyProfile = strPtr("retail")
	engine := NewEngine(nil, bookings)

	report := engine.originDemographics()
	if assert.NotNil(t, report.PerfilAgencias) {
		assert.Equal(t, "online travel agency", report.PerfilAgencias.AgenciaDominante)
	}
}
