package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medellin/server/internal/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// searchRows builds n identical search rows from the given country with the
// given party size.
func searchRows(n int, country string, pax int) []models.SearchRecord {
	rows := make([]models.SearchRecord, n)
	for i := range rows {
		rows[i] = models.SearchRecord{
			OrigCityCode:  "XXX",
			OrigCtryCode:  country,
			CreationDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DepDate:       time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			NbPaxTogether: intPtr(pax),
			LeadTime:      106,
			SearchMonth:   3,
			SearchYear:    2024,
			DepMonth:      6,
		}
	}
	return rows
}

// bookingRows builds n identical booking rows from the given country with
// ond_pax set to pax.
func bookingRows(n int, country string, pax int) []models.BookingRecord {
	rows := make([]models.BookingRecord, n)
	for i := range rows {
		rows[i] = models.BookingRecord{
			BoardCityCode:   "AAA",
			BoardCtryCode:   country,
			BoardCtryName:   country,
			CreationDate:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			TripDepDate:     time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
			OndPax:          intPtr(pax),
			BookingMonth:    4,
			BookingYear:     2024,
			BookingLeadTime: 100,
		}
	}
	return rows
}

func TestReportsWithoutBookings(t *testing.T) {
	engine := NewEngine(nil, nil)

	for name, op := range map[string]func(string) (string, error){
		"demographics": engine.OriginDemographics,
		"pricing":      engine.PricingRevenue,
		"audience":     engine.AudienceRecommendation,
		"strategy":     engine.CampaignStrategy,
	} {
		out, err := op("")
		assert.NoError(t, err, name)
		assert.Equal(t, msgNoBookings, out, name)
	}

	out, err := engine.TemporalDemand("")
	assert.NoError(t, err)
	assert.Equal(t, msgNoDatasets, out)

	out, err = engine.ConversionFunnel("")
	assert.NoError(t, err)
	assert.Equal(t, msgNeedsBothSets, out)
}

func TestConversionFunnelNeedsBothDatasets(t *testing.T) {
	searchesOnly := NewEngine(searchRows(10, "FR", 1), nil)
	out, err := searchesOnly.ConversionFunnel("")
	assert.NoError(t, err)
	assert.Equal(t, msgNeedsBothSets, out)

	bookingsOnly := NewEngine(nil, bookingRows(10, "France", 1))
	out, err = bookingsOnly.ConversionFunnel("")
	assert.NoError(t, err)
	assert.Equal(t, msgNeedsBothSets, out)
}

func TestTemporalDemandWorksWithSingleDataset(t *testing.T) {
	engine := NewEngine(searchRows(5, "FR", 1), nil)
	report := engine.temporalDemand()

	assert.NotNil(t, report.EstacionalidadBusquedas)
	assert.Nil(t, report.EstacionalidadReservas)
	assert.NotNil(t, report.AnticipacionCompra.LeadTimeBusquedas)
	assert.Nil(t, report.AnticipacionCompra.LeadTimeReservas)
}

func TestCabinNameFallsBackToCode(t *testing.T) {
	assert.Equal(t, "Economy", cabinName("Y"))
	assert.Equal(t, "First", cabinName("F"))
	assert.Equal(t, "Z", cabinName("Z"))
}
