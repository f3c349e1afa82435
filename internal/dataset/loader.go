package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"

	"medellin/server/internal/models"
)

// rawSearch mirrors one row of a search parquet file before normalization.
// Optional columns are pointers so an absent column simply yields nil rows.
type rawSearch struct {
	OrigCityCode  string   `parquet:"ond_orig_city_code,optional"`
	OrigCtryCode  string   `parquet:"ond_orig_ctry_code,optional"`
	CreationDate  string   `parquet:"creation_date"`
	DepDate       string   `parquet:"ond_orig_dep_date"`
	NbPaxTogether *int64   `parquet:"nb_pax_together,optional"`
	LeadTime      *float64 `parquet:"lead_time,optional"`
	StayDuration  *float64 `parquet:"stay_duration,optional"`
}

type rawBooking struct {
	BoardCityCode      string   `parquet:"trip_board_city_code,optional"`
	BoardCtryCode      string   `parquet:"trip_board_ctry_code,optional"`
	BoardCtryName      string   `parquet:"trip_board_ctry_name,optional"`
	CreationDate       string   `parquet:"creation_date"`
	TripDepDate        string   `parquet:"trip_dep_date"`
	OndPax             *int64   `parquet:"ond_pax,optional"`
	NbPaxTogether      *int64   `parquet:"nb_pax_together,optional"`
	CabinClass         *string  `parquet:"ond_cab_class,optional"`
	AvgIndicativePrice *float64 `parquet:"avg_indicative_price,optional"`
	BusinessLeisure    *string  `parquet:"business_leisure,optional"`
	OnlineOffline      *string  `parquet:"online_offline,optional"`
	AgencyProfile      *string  `parquet:"travel_agency_profile,optional"`
	TripClass          *string  `parquet:"trip_class,optional"`
	DaysAtDestination  *float64 `parquet:"days_at_destination,optional"`
}

// Store holds both record sets in memory for the process lifetime. It is
// read-only after Load returns.
type Store struct {
	Searches []models.SearchRecord
	Bookings []models.BookingRecord
}

func (s *Store) HasSearches() bool { return len(s.Searches) > 0 }
func (s *Store) HasBookings() bool { return len(s.Bookings) > 0 }

// Load reads every search file matched by searchesGlob (concatenated in
// sorted filesystem order) and the bookings file at bookingsPath. A missing
// dataset is not an error: the matching slice stays empty and every report
// degrades on its own. An unparseable date column is an error and fails the
// whole load.
func Load(searchesGlob, bookingsPath string, logger *logrus.Logger) (*Store, error) {
	store := &Store{}

	matches, err := filepath.Glob(searchesGlob)
	if err != nil {
		return nil, fmt.Errorf("invalid searches glob %q: %w", searchesGlob, err)
	}
	if len(matches) == 0 {
		logger.Warnf("No search files matched %s", searchesGlob)
	} else {
		logger.Infof("Loading %d search files", len(matches))
		var raws []rawSearch
		for _, path := range matches {
			rows, err := parquet.ReadFile[rawSearch](path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			raws = append(raws, rows...)
		}
		store.Searches, err = normalizeSearches(raws)
		if err != nil {
			return nil, err
		}
		logger.Infof("Loaded %d search records", len(store.Searches))
	}

	if _, err := os.Stat(bookingsPath); err != nil {
		logger.WithError(err).Warnf("Bookings file not available at %s", bookingsPath)
		return store, nil
	}
	rows, err := parquet.ReadFile[rawBooking](bookingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", bookingsPath, err)
	}
	store.Bookings, err = normalizeBookings(rows)
	if err != nil {
		return nil, err
	}
	logger.Infof("Loaded %d booking records", len(store.Bookings))

	return store, nil
}
