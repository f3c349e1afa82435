package analytics

type temporalReport struct {
	EstacionalidadBusquedas *searchSeasonality  `json:"estacionalidad_busquedas,omitempty"`
	EstacionalidadReservas  *bookingSeasonality `json:"estacionalidad_reservas,omitempty"`
	AnticipacionCompra      purchaseLeadTimes   `json:"anticipacion_compra"`
	DuracionEstancia        stayDurations       `json:"duracion_estancia"`
}

type searchSeasonality struct {
	ViajesMasBuscadosPorMes []monthCount `json:"viajes_mas_buscados_por_mes"`
	TemporadaAlta           []int        `json:"temporada_alta"`
	TemporadaBaja           []int        `json:"temporada_baja"`
}

type bookingSeasonality struct {
	ReservasPorMesViaje []monthCount `json:"reservas_por_mes_viaje"`
	MesesPicoReservas   []int        `json:"meses_pico_reservas"`
}

type purchaseLeadTimes struct {
	LeadTimeBusquedas *searchLeadTimes  `json:"lead_time_busquedas,omitempty"`
	LeadTimeReservas  *bookingLeadTimes `json:"lead_time_reservas,omitempty"`
}

type searchLeadTimes struct {
	PromedioDias float64 `json:"promedio_dias"`
	MedianaDias  float64 `json:"mediana_dias"`
	Corta0a7     int     `json:"anticipacion_corta_0_7dias"`
	Media8a30    int     `json:"anticipacion_media_8_30dias"`
	Larga30Plus  int     `json:"anticipacion_larga_30plus"`
}

type bookingLeadTimes struct {
	PromedioDias float64 `json:"promedio_dias"`
	MedianaDias  float64 `json:"mediana_dias"`
}

type stayDurations struct {
	Busquedas *searchStays  `json:"busquedas,omitempty"`
	Reservas  *bookingStays `json:"reservas,omitempty"`
}

type searchStays struct {
	PromedioNoches float64 `json:"promedio_noches"`
	Cortas1a3      int     `json:"estancias_cortas_1_3noches"`
	Medias4a7      int     `json:"estancias_medias_4_7noches"`
	Largas7Plus    int     `json:"estancias_largas_7plus"`
}

type bookingStays struct {
	PromedioNoches float64 `json:"promedio_noches"`
	MedianaNoches  float64 `json:"mediana_noches"`
}

// TemporalDemand reports seasonality, purchase lead time and stay duration.
// The searches half and the bookings half are computed independently and
// either is omitted when its dataset is missing.
func (e *Engine) TemporalDemand(query string) (string, error) {
	if !e.hasSearches() && !e.hasBookings() {
		return msgNoDatasets, nil
	}
	return toJSON(e.temporalDemand())
}

func (e *Engine) temporalDemand() temporalReport {
	report := temporalReport{}

	if e.hasSearches() {
		depMonths := monthCounter{}
		leads := []float64{}
		shortLead, midLead, longLead := 0, 0, 0
		stays := []float64{}
		shortStay, midStay, longStay := 0, 0, 0

		for _, s := range e.searches {
			depMonths.add(s.DepMonth)

			lead := s.LeadTime
			leads = append(leads, float64(lead))
			switch {
			case lead <= 7:
				shortLead++
			case lead <= 30:
				midLead++
			default:
				longLead++
			}

			// -1 marks one-way searches; they carry no stay at all.
			if s.StayDuration != nil && *s.StayDuration >= 0 {
				stay := *s.StayDuration
				stays = append(stays, stay)
				switch {
				case stay <= 3:
					shortStay++
				case stay <= 7:
					midStay++
				default:
					longStay++
				}
			}
		}

		report.EstacionalidadBusquedas = &searchSeasonality{
			ViajesMasBuscadosPorMes: depMonths.byMonth(),
			TemporadaAlta:           depMonths.topMonths(3),
			TemporadaBaja:           depMonths.bottomMonths(3),
		}
		report.AnticipacionCompra.LeadTimeBusquedas = &searchLeadTimes{
			PromedioDias: mean(leads),
			MedianaDias:  median(leads),
			Corta0a7:     shortLead,
			Media8a30:    midLead,
			Larga30Plus:  longLead,
		}
		if len(stays) > 0 {
			report.DuracionEstancia.Busquedas = &searchStays{
				PromedioNoches: mean(stays),
				Cortas1a3:      shortStay,
				Medias4a7:      midStay,
				Largas7Plus:    longStay,
			}
		}
	}

	if e.hasBookings() {
		tripMonths := monthCounter{}
		leads := []float64{}
		stays := []float64{}

		for _, b := range e.bookings {
			tripMonths.add(int(b.TripDepDate.Month()))
			leads = append(leads, float64(b.BookingLeadTime))
			if b.DaysAtDestination != nil && *b.DaysAtDestination > 0 {
				stays = append(stays, *b.DaysAtDestination)
			}
		}

		report.EstacionalidadReservas = &bookingSeasonality{
			ReservasPorMesViaje: tripMonths.byMonth(),
			MesesPicoReservas:   tripMonths.topMonths(3),
		}
		report.AnticipacionCompra.LeadTimeReservas = &bookingLeadTimes{
			PromedioDias: mean(leads),
			MedianaDias:  median(leads),
		}
		if len(stays) > 0 {
			report.DuracionEstancia.Reservas = &bookingStays{
				PromedioNoches: mean(stays),
				MedianaNoches:  median(stays),
			}
		}
	}

	return report
}
