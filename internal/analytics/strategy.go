package analytics

import "fmt"

type strategyReport struct {
	TimingOptimo        *timingPlan               `json:"timing_optimo,omitempty"`
	CanalesRecomendados []channelRec              `json:"canales_recomendados"`
	MensajesPorSegmento map[string]segmentMessage `json:"mensajes_por_segmento"`
	TacticasEspecificas []tactic                  `json:"tacticas_especificas"`
	KPIsSugeridos       kpiPlan                   `json:"kpis_sugeridos"`
}

type timingPlan struct {
	TemporadaAltaBusquedas []string `json:"temporada_alta_busquedas"`
	TemporadaAltaReservas  []string `json:"temporada_alta_reservas"`
	VentanaAnticipacion    string   `json:"ventana_anticipacion"`
}

type channelRec struct {
	Canal     string `json:"canal"`
	Prioridad string `json:"prioridad"`
	Razon     string `json:"razon"`
}

type segmentMessage struct {
	MensajePrincipal string   `json:"mensaje_principal"`
	PuntosClave      []string `json:"puntos_clave"`
}

type tactic struct {
	Tactica             string   `json:"tactica"`
	Objetivo            string   `json:"objetivo"`
	Acciones            []string `json:"acciones"`
	PresupuestoSugerido string   `json:"presupuesto_sugerido,omitempty"`
}

type kpiPlan struct {
	Alcance       []string `json:"alcance"`
	Consideracion []string `json:"consideracion"`
	Conversion    []string `json:"conversion"`
	Retencion     []string `json:"retencion"`
}

// CampaignStrategy combines timing, channels, per-segment messaging,
// tactics and KPI suggestions into one campaign plan.
func (e *Engine) CampaignStrategy(query string) (string, error) {
	if !e.hasBookings() {
		return msgNoBookings, nil
	}
	return toJSON(e.campaignStrategy())
}

func (e *Engine) campaignStrategy() strategyReport {
	report := strategyReport{
		CanalesRecomendados: []channelRec{},
		MensajesPorSegmento: map[string]segmentMessage{},
		TacticasEspecificas: []tactic{},
	}

	bizLeisure := counter{}
	online := 0
	channelTagged := 0
	for _, b := range e.bookings {
		if b.BusinessLeisure != nil {
			bizLeisure.add(*b.BusinessLeisure)
		}
		if b.OnlineOffline != nil {
			channelTagged++
			if *b.OnlineOffline == "online" {
				online++
			}
		}
	}

	var searchLeads []float64
	if e.hasSearches() {
		searchMonths := monthCounter{}
		bookingMonths := monthCounter{}
		for _, s := range e.searches {
			searchMonths.add(s.DepMonth)
			searchLeads = append(searchLeads, float64(s.LeadTime))
		}
		for _, b := range e.bookings {
			bookingMonths.add(int(b.TripDepDate.Month()))
		}

		report.TimingOptimo = &timingPlan{
			TemporadaAltaBusquedas: monthLabels(searchMonths.topMonths(3)),
			TemporadaAltaReservas:  monthLabels(bookingMonths.topMonths(3)),
			VentanaAnticipacion:    fmt.Sprintf("%.0f días promedio", mean(searchLeads)),
		}
	}

	if channelTagged > 0 {
		onlineShare := float64(online) / float64(len(e.bookings)) * 100
		if onlineShare > 60 {
			report.CanalesRecomendados = []channelRec{
				{Canal: "Google Ads Search", Prioridad: "Alta", Razon: "Alto volumen de búsquedas online"},
				{Canal: "Meta Ads (Facebook/Instagram)", Prioridad: "Alta", Razon: "Segmentación precisa por demografía"},
				{Canal: "YouTube Ads", Prioridad: "Media", Razon: "Contenido visual de Medellín"},
				{Canal: "TikTok", Prioridad: "Media", Razon: "Tendencias y viralización"},
				{Canal: "Email Marketing", Prioridad: "Media", Razon: "Retargeting de búsquedas"},
			}
		} else {
			report.CanalesRecomendados = []channelRec{
				{Canal: "Agencias de viaje", Prioridad: "Alta", Razon: "Fuerte presencia offline"},
				{Canal: "Google Ads", Prioridad: "Alta", Razon: "Capturar intención de búsqueda"},
				{Canal: "Ferias de turismo", Prioridad: "Media", Razon: "Contacto directo B2B"},
			}
		}
	}

	if total := float64(bizLeisure.total()); total > 0 {
		if float64(bizLeisure["business"])/total > 0.3 {
			report.MensajesPorSegmento["Business"] = segmentMessage{
				MensajePrincipal: "Medellín: Hub de negocios e innovación de Latinoamérica",
				PuntosClave: []string{
					"Conectividad aérea internacional",
					"Infraestructura hotelera 5 estrellas",
					"Centros de convenciones modernos",
					"Networking en ciudad innovadora",
				},
			}
		}
		if float64(bizLeisure["leisure"])/total > 0.5 {
			report.MensajesPorSegmento["Leisure"] = segmentMessage{
				MensajePrincipal: "Medellín: Ciudad de eterna primavera y experiencias únicas",
				PuntosClave: []string{
					"Clima perfecto todo el año",
					"Gastronomía paisa auténtica",
					"Cultura cafetera y paisajes",
					"Vida nocturna y entretenimiento",
				},
			}
		}
	}

	hasBoth := e.hasSearches() && e.hasBookings()
	rate := 0.0
	if hasBoth {
		rate = conversionRate(len(e.bookings), len(e.searches))
		if rate < 35 {
			report.TacticasEspecificas = append(report.TacticasEspecificas, tactic{
				Tactica:  "Campaña de retargeting agresiva",
				Objetivo: fmt.Sprintf("Recuperar %.0f%% de búsquedas perdidas", 100-rate),
				Acciones: []string{
					"Pixel de seguimiento en búsquedas",
					"Ofertas flash 24-48hrs post-búsqueda",
					"Descuentos progresivos por tiempo limitado",
				},
				PresupuestoSugerido: "30-40% del budget digital",
			})
		}
	}
	if len(searchLeads) > 0 {
		avgLead := int(mean(searchLeads))
		report.TacticasEspecificas = append(report.TacticasEspecificas, tactic{
			Tactica:  "Calendario de campañas basado en anticipación",
			Objetivo: fmt.Sprintf("Activar campaña %d días antes de fechas pico", avgLead+7),
			Acciones: []string{
				fmt.Sprintf("Iniciar campañas %d días antes de temporada alta", avgLead+14),
				"Early bird discounts para reservas anticipadas",
				"Urgencia: 'Solo X asientos a este precio'",
			},
		})
	}

	conversionKPI := "Tasa de conversión"
	if hasBoth {
		conversionKPI = fmt.Sprintf("Tasa de conversión búsqueda-reserva (benchmark actual: %.1f%%)", rate)
	}
	report.KPIsSugeridos = kpiPlan{
		Alcance: []string{
			"Impresiones en mercados objetivo",
			"Alcance único por país origen",
		},
		Consideracion: []string{
			"CTR (Click-Through Rate) en ads",
			"Tiempo en sitio de aterrizaje",
			"Páginas vistas por sesión",
		},
		Conversion: []string{
			conversionKPI,
			"Costo por adquisición (CPA)",
			"Revenue por usuario (RPU)",
		},
		Retencion: []string{
			"Retargeting conversion rate",
			"Email open rate",
			"Repeat booking rate",
		},
	}

	return report
}

func monthLabels(months []int) []string {
	labels := make([]string, 0, len(months))
	for _, m := range months {
		labels = append(labels, monthNames[m])
	}
	return labels
}
