package analytics

type demographicsReport struct {
	ResumenEjecutivo executiveSummary `json:"resumen_ejecutivo"`
	MercadosOrigen   originMarkets    `json:"mercados_origen"`
	PerfilAgencias   *agencyProfile   `json:"perfil_agencias,omitempty"`
	Segmentacion     segmentation     `json:"segmentacion"`
}

type executiveSummary struct {
	TotalReservas    int    `json:"total_reservas"`
	TotalPasajeros   int    `json:"total_pasajeros"`
	MercadoPrincipal string `json:"mercado_principal"`
	CiudadPrincipal  string `json:"ciudad_principal"`
}

type originMarkets struct {
	Top10Paises         []rankEntry `json:"top_10_paises"`
	Top10Ciudades       []rankEntry `json:"top_10_ciudades"`
	TotalPaisesUnicos   int         `json:"total_paises_unicos"`
	TotalCiudadesUnicas int         `json:"total_ciudades_unicas"`
}

type agencyProfile struct {
	Distribucion     map[string]int `json:"distribucion"`
	AgenciaDominante string         `json:"agencia_dominante"`
}

type segmentation struct {
	BusinessLeisure *bizLeisureSplit `json:"business_leisure,omitempty"`
	TipoViaje       map[string]int   `json:"tipo_viaje,omitempty"`
	TamanoGrupo     *groupSizes      `json:"tamano_grupo,omitempty"`
}

type bizLeisureSplit struct {
	Distribucion map[string]int    `json:"distribucion"`
	Porcentajes  map[string]string `json:"porcentajes"`
}

type groupSizes struct {
	PromedioPasajeros float64 `json:"promedio_pasajeros"`
	ViajerosSolos     int     `json:"viajeros_solos"`
	Grupos2Personas   int     `json:"grupos_2_personas"`
	Grupos3Plus       int     `json:"grupos_3plus"`
}

// OriginDemographics reports where travellers book from: top origin
// countries and cities, travel-agency profile, business/leisure split, trip
// type and group sizes.
func (e *Engine) OriginDemographics(query string) (string, error) {
	if !e.hasBookings() {
		return msgNoBookings, nil
	}
	return toJSON(e.originDemographics())
}

func (e *Engine) originDemographics() demographicsReport {
	countries := counter{}
	cities := counter{}
	countryCodes := counter{}
	agencies := counter{}
	bizLeisure := counter{}
	tripTypes := counter{}

	totalPax := 0
	partySizes := []float64{}
	solo, pairs, groups := 0, 0, 0

	for _, b := range e.bookings {
		if b.BoardCtryName != "" {
			countries.add(b.BoardCtryName)
		}
		if b.BoardCityCode != "" {
			cities.add(b.BoardCityCode)
		}
		if b.BoardCtryCode != "" {
			countryCodes.add(b.BoardCtryCode)
		}
		if b.AgencyProfile != nil {
			agencies.add(*b.AgencyProfile)
		}
		if b.BusinessLeisure != nil {
			bizLeisure.add(*b.BusinessLeisure)
		}
		if b.TripClass != nil {
			tripTypes.add(*b.TripClass)
		}
		if b.OndPax != nil {
			totalPax += *b.OndPax
		}
		if b.NbPaxTogether != nil {
			size := *b.NbPaxTogether
			partySizes = append(partySizes, float64(size))
			switch {
			case size == 1:
				solo++
			case size == 2:
				pairs++
			case size >= 3:
				groups++
			}
		}
	}

	report := demographicsReport{
		MercadosOrigen: originMarkets{
			Top10Paises:         countries.top(10),
			Top10Ciudades:       cities.top(10),
			TotalPaisesUnicos:   len(countryCodes),
			TotalCiudadesUnicas: len(cities),
		},
	}

	if len(agencies) > 0 {
		report.PerfilAgencias = &agencyProfile{
			Distribucion:     agencies,
			AgenciaDominante: agencies.mode(),
		}
	}

	if len(bizLeisure) > 0 {
		total := float64(bizLeisure.total())
		percentages := make(map[string]string, len(bizLeisure))
		for segment, count := range bizLeisure {
			percentages[segment] = pct(float64(count), total)
		}
		report.Segmentacion.BusinessLeisure = &bizLeisureSplit{
			Distribucion: bizLeisure,
			Porcentajes:  percentages,
		}
	}

	if len(tripTypes) > 0 {
		report.Segmentacion.TipoViaje = tripTypes
	}

	if len(partySizes) > 0 {
		report.Segmentacion.TamanoGrupo = &groupSizes{
			PromedioPasajeros: mean(partySizes),
			ViajerosSolos:     solo,
			Grupos2Personas:   pairs,
			Grupos3Plus:       groups,
		}
	}

	report.ResumenEjecutivo = executiveSummary{
		TotalReservas:    len(e.bookings),
		TotalPasajeros:   totalPax,
		MercadoPrincipal: firstOr(countries.top(1), "N/A"),
		CiudadPrincipal:  firstOr(cities.top(1), "N/A"),
	}
	return report
}

func firstOr(entries []rankEntry, fallback string) string {
	if len(entries) == 0 {
		return fallback
	}
	return entries[0].Nombre
}
