package dataset

import (
	"fmt"
	"math"
	"time"

	"medellin/server/internal/models"
)

// Date layouts accepted in the source tables, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date value %q", value)
}

// daysBetween matches pandas' timedelta semantics: whole days, floored
// towards negative infinity, so a departure before the creation date yields
// a negative lead time.
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

func normalizeSearches(raws []rawSearch) ([]models.SearchRecord, error) {
	records := make([]models.SearchRecord, 0, len(raws))
	for i, raw := range raws {
		creation, err := parseDate(raw.CreationDate)
		if err != nil {
			return nil, fmt.Errorf("searches row %d, column creation_date: %w", i, err)
		}
		dep, err := parseDate(raw.DepDate)
		if err != nil {
			return nil, fmt.Errorf("searches row %d, column ond_orig_dep_date: %w", i, err)
		}

		rec := models.SearchRecord{
			OrigCityCode: raw.OrigCityCode,
			OrigCtryCode: raw.OrigCtryCode,
			CreationDate: creation,
			DepDate:      dep,
			SearchMonth:  int(creation.Month()),
			SearchYear:   creation.Year(),
			DepMonth:     int(dep.Month()),
		}
		if raw.NbPaxTogether != nil {
			pax := int(*raw.NbPaxTogether)
			rec.NbPaxTogether = &pax
		}
		if raw.StayDuration != nil {
			stay := *raw.StayDuration
			rec.StayDuration = &stay
		}
		// Keep a precomputed lead_time column when the source carries one.
		if raw.LeadTime != nil {
			rec.LeadTime = int(*raw.LeadTime)
		} else {
			rec.LeadTime = daysBetween(creation, dep)
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizeBookings(raws []rawBooking) ([]models.BookingRecord, error) {
	records := make([]models.BookingRecord, 0, len(raws))
	for i, raw := range raws {
		creation, err := parseDate(raw.CreationDate)
		if err != nil {
			return nil, fmt.Errorf("bookings row %d, column creation_date: %w", i, err)
		}
		dep, err := parseDate(raw.TripDepDate)
		if err != nil {
			return nil, fmt.Errorf("bookings row %d, column trip_dep_date: %w", i, err)
		}

		rec := models.BookingRecord{
			BoardCityCode:   raw.BoardCityCode,
			BoardCtryCode:   raw.BoardCtryCode,
			BoardCtryName:   raw.BoardCtryName,
			CreationDate:    creation,
			TripDepDate:     dep,
			BookingMonth:    int(creation.Month()),
			BookingYear:     creation.Year(),
			BookingLeadTime: daysBetween(creation, dep),
		}
		if raw.OndPax != nil {
			pax := int(*raw.OndPax)
			rec.OndPax = &pax
		}
		if raw.NbPaxTogether != nil {
			pax := int(*raw.NbPaxTogether)
			rec.NbPaxTogether = &pax
		}
		rec.CabinClass = copyString(raw.CabinClass)
		rec.BusinessLeisure = copyString(raw.BusinessLeisure)
		rec.OnlineOffline = copyString(raw.OnlineOffline)
		rec.AgencyProfile = copyString(raw.AgencyProfile)
		rec.TripClass = copyString(raw.TripClass)
		if raw.AvgIndicativePrice != nil {
			price := *raw.AvgIndicativePrice
			rec.AvgIndicativePrice = &price
		}
		if raw.DaysAtDestination != nil {
			days := *raw.DaysAtDestination
			rec.DaysAtDestination = &days
		}
		records = append(records, rec)
	}
	return records, nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
