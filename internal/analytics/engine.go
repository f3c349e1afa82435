// Package analytics computes the marketing reports for Medellín tourism
// campaigns from the Amadeus searches and bookings record sets. Every report
// is a pure read over the immutable record store and renders to indented
// JSON; the Spanish field names are the contract with the agent prompt and
// the front end.
package analytics

import (
	"encoding/json"

	"medellin/server/internal/models"
)

// Unavailability bodies returned instead of a report when the minimum
// required dataset is missing. They are answers, not errors.
const (
	msgNoBookings    = "No hay datos de bookings disponibles"
	msgNoDatasets    = "No hay datos de searches ni de bookings disponibles"
	msgNeedsBothSets = "Se requieren ambos datasets (searches y bookings) para análisis de conversión"
)

var monthNames = map[int]string{
	1: "Enero", 2: "Febrero", 3: "Marzo", 4: "Abril",
	5: "Mayo", 6: "Junio", 7: "Julio", 8: "Agosto",
	9: "Septiembre", 10: "Octubre", 11: "Noviembre", 12: "Diciembre",
}

var cabinNames = map[string]string{
	"Y": "Economy",
	"W": "Premium Economy",
	"C": "Business",
	"F": "First",
}

// Engine exposes the six report operations. Both record sets are held by
// reference and never mutated.
type Engine struct {
	searches []models.SearchRecord
	bookings []models.BookingRecord
}

func NewEngine(searches []models.SearchRecord, bookings []models.BookingRecord) *Engine {
	return &Engine{searches: searches, bookings: bookings}
}

func (e *Engine) hasSearches() bool { return len(e.searches) > 0 }
func (e *Engine) hasBookings() bool { return len(e.bookings) > 0 }

func toJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func cabinName(code string) string {
	if name, ok := cabinNames[code]; ok {
		return name
	}
	return code
}
