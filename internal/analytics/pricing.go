package analytics

import "sort"

type pricingReport struct {
	EstructuraPrecios  *priceStructure   `json:"estructura_precios,omitempty"`
	Revenue            *revenueSummary   `json:"revenue,omitempty"`
	ValorPorSegmento   *segmentValue     `json:"valor_por_segmento,omitempty"`
	PreferenciasCabina *cabinPreferences `json:"preferencias_cabina,omitempty"`
}

type priceStructure struct {
	PrecioPromedioUSD  float64 `json:"precio_promedio_usd"`
	PrecioMedianaUSD   float64 `json:"precio_mediana_usd"`
	PrecioMinUSD       float64 `json:"precio_min_usd"`
	PrecioMaxUSD       float64 `json:"precio_max_usd"`
	DesviacionEstandar float64 `json:"desviacion_estandar"`
	Percentil25        float64 `json:"percentil_25"`
	Percentil75        float64 `json:"percentil_75"`
}

type revenueSummary struct {
	RevenueTotalUSD           float64 `json:"revenue_total_usd"`
	RevenuePromedioPorReserva float64 `json:"revenue_promedio_por_reserva"`
}

type segmentValue struct {
	TopPaisesRevenue []countryRevenue `json:"top_paises_revenue"`
}

type countryRevenue struct {
	Pais           string  `json:"pais"`
	RevenueTotal   float64 `json:"revenue_total"`
	PrecioPromedio float64 `json:"precio_promedio"`
}

type cabinPreferences struct {
	Distribucion            map[string]int     `json:"distribucion"`
	PorcentajePremium       string             `json:"porcentaje_premium"`
	PrecioPromedioPorCabina map[string]float64 `json:"precio_promedio_por_cabina,omitempty"`
}

// PricingRevenue reports the price structure of valid bookings, total and
// per-booking revenue, the five highest-revenue origin countries and cabin
// class preferences.
func (e *Engine) PricingRevenue(query string) (string, error) {
	if !e.hasBookings() {
		return msgNoBookings, nil
	}
	return toJSON(e.pricingRevenue())
}

func (e *Engine) pricingRevenue() pricingReport {
	report := pricingReport{}

	validPrices := []float64{}
	pricedRows := 0
	hasPax := false
	paxRevenue := 0.0
	countryRevenues := map[string]*countryRevenue{}
	countryCounts := map[string]int{}

	for _, b := range e.bookings {
		if b.OndPax != nil {
			hasPax = true
		}
		if b.AvgIndicativePrice == nil {
			continue
		}
		price := *b.AvgIndicativePrice
		pricedRows++
		if price > 0 {
			validPrices = append(validPrices, price)
		}
		if b.OndPax != nil {
			paxRevenue += price * float64(*b.OndPax)
		}
		if b.BoardCtryName != "" {
			cr := countryRevenues[b.BoardCtryName]
			if cr == nil {
				cr = &countryRevenue{Pais: b.BoardCtryName}
				countryRevenues[b.BoardCtryName] = cr
			}
			cr.RevenueTotal += price
			countryCounts[b.BoardCtryName]++
		}
	}

	if pricedRows > 0 {
		report.EstructuraPrecios = &priceStructure{
			PrecioPromedioUSD:  mean(validPrices),
			PrecioMedianaUSD:   median(validPrices),
			PrecioMinUSD:       minOf(validPrices),
			PrecioMaxUSD:       maxOf(validPrices),
			DesviacionEstandar: stdDev(validPrices),
			Percentil25:        percentile(validPrices, 25),
			Percentil75:        percentile(validPrices, 75),
		}

		totalRevenue := sum(validPrices)
		if hasPax {
			totalRevenue = paxRevenue
		}
		report.Revenue = &revenueSummary{
			RevenueTotalUSD:           totalRevenue,
			RevenuePromedioPorReserva: totalRevenue / float64(len(e.bookings)),
		}

		if len(countryRevenues) > 0 {
			top := make([]countryRevenue, 0, len(countryRevenues))
			for name, cr := range countryRevenues {
				entry := *cr
				entry.PrecioPromedio = cr.RevenueTotal / float64(countryCounts[name])
				top = append(top, entry)
			}
			sort.Slice(top, func(i, j int) bool {
				if top[i].RevenueTotal != top[j].RevenueTotal {
					return top[i].RevenueTotal > top[j].RevenueTotal
				}
				return top[i].Pais < top[j].Pais
			})
			if len(top) > 5 {
				top = top[:5]
			}
			report.ValorPorSegmento = &segmentValue{TopPaisesRevenue: top}
		}
	}

	report.PreferenciasCabina = e.cabinPreferences()
	return report
}

func (e *Engine) cabinPreferences() *cabinPreferences {
	codes := counter{}
	cabinPriceSums := map[string]float64{}
	cabinPriceCounts := map[string]int{}

	for _, b := range e.bookings {
		if b.CabinClass == nil {
			continue
		}
		code := *b.CabinClass
		codes.add(code)
		if b.AvgIndicativePrice != nil {
			cabinPriceSums[code] += *b.AvgIndicativePrice
			cabinPriceCounts[code]++
		}
	}
	if len(codes) == 0 {
		return nil
	}

	distribution := make(map[string]int, len(codes))
	for code, count := range codes {
		distribution[cabinName(code)] += count
	}
	premium := float64(codes["C"] + codes["F"])

	prefs := &cabinPreferences{
		Distribucion:      distribution,
		PorcentajePremium: pct(premium, float64(codes.total())),
	}
	if len(cabinPriceCounts) > 0 {
		means := make(map[string]float64, len(cabinPriceCounts))
		for code, count := range cabinPriceCounts {
			means[cabinName(code)] = cabinPriceSums[code] / float64(count)
		}
		prefs.PrecioPromedioPorCabina = means
	}
	return prefs
}
