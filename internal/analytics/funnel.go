package analytics

import (
	"fmt"
	"sort"
)

type funnelReport struct {
	MetricasConversion conversionMetrics   `json:"metricas_conversion"`
	AnalisisPorOrigen  []countryConversion `json:"analisis_por_origen"`
	Oportunidades      []opportunity       `json:"oportunidades"`
}

type conversionMetrics struct {
	TotalPasajerosBuscados   int    `json:"total_pasajeros_buscados"`
	TotalPasajerosReservados int    `json:"total_pasajeros_reservados"`
	TasaConversion           string `json:"tasa_conversion"`
	BusquedasSinConvertir    int    `json:"busquedas_sin_convertir"`
}

type countryConversion struct {
	Pais       string `json:"pais"`
	Busquedas  int    `json:"busquedas"`
	Reservas   int    `json:"reservas"`
	Conversion string `json:"conversion"`
}

type opportunity struct {
	Tipo          string `json:"tipo"`
	Descripcion   string `json:"descripcion"`
	Recomendacion string `json:"recomendacion"`
}

// ConversionFunnel compares searched passengers against booked passengers,
// overall and for the five origin countries with the most search volume, and
// flags conversion gaps. It needs both datasets.
func (e *Engine) ConversionFunnel(query string) (string, error) {
	if !e.hasSearches() || !e.hasBookings() {
		return msgNeedsBothSets, nil
	}
	return toJSON(e.conversionFunnel())
}

func (e *Engine) conversionFunnel() funnelReport {
	searched := 0
	searchByCountry := map[string]int{}
	for _, s := range e.searches {
		pax := 1
		if s.NbPaxTogether != nil {
			pax = *s.NbPaxTogether
		}
		searched += pax
		if s.OrigCtryCode != "" {
			searchByCountry[s.OrigCtryCode] += pax
		}
	}

	booked := 0
	bookingByCountry := map[string]int{}
	for _, b := range e.bookings {
		pax := 1
		if b.OndPax != nil {
			pax = *b.OndPax
		}
		booked += pax
		if b.BoardCtryCode != "" {
			bookingByCountry[b.BoardCtryCode] += pax
		}
	}

	rate := conversionRate(booked, searched)

	report := funnelReport{
		MetricasConversion: conversionMetrics{
			TotalPasajerosBuscados:   searched,
			TotalPasajerosReservados: booked,
			TasaConversion:           fmt.Sprintf("%.2f%%", rate),
			BusquedasSinConvertir:    searched - booked,
		},
		AnalisisPorOrigen: []countryConversion{},
		Oportunidades:     []opportunity{},
	}

	countries := make([]string, 0, len(searchByCountry))
	for c := range searchByCountry {
		countries = append(countries, c)
	}
	sort.Slice(countries, func(i, j int) bool {
		if searchByCountry[countries[i]] != searchByCountry[countries[j]] {
			return searchByCountry[countries[i]] > searchByCountry[countries[j]]
		}
		return countries[i] < countries[j]
	})
	if len(countries) > 5 {
		countries = countries[:5]
	}
	for _, c := range countries {
		report.AnalisisPorOrigen = append(report.AnalisisPorOrigen, countryConversion{
			Pais:       c,
			Busquedas:  searchByCountry[c],
			Reservas:   bookingByCountry[c],
			Conversion: fmt.Sprintf("%.2f%%", conversionRate(bookingByCountry[c], searchByCountry[c])),
		})
	}

	// Both thresholds are evaluated independently; a very low rate fires both.
	if rate < 30 {
		report.Oportunidades = append(report.Oportunidades, opportunity{
			Tipo:          "Conversión general baja",
			Descripcion:   fmt.Sprintf("Solo %.1f%% de las búsquedas se convierten en reservas", rate),
			Recomendacion: "Implementar estrategias de retargeting y simplificar proceso de reserva",
		})
	}
	if rate < 50 {
		report.Oportunidades = append(report.Oportunidades, opportunity{
			Tipo:          "Gap de conversión significativo",
			Descripcion:   fmt.Sprintf("%.1f%% de interesados no completan la reserva", 100-rate),
			Recomendacion: "Analizar barreras: precio, disponibilidad, UX del sitio",
		})
	}

	return report
}

func conversionRate(booked, searched int) float64 {
	if searched <= 0 {
		return 0
	}
	return float64(booked) / float64(searched) * 100
}
