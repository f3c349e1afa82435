package models

import "time"

// SearchRecord is one flight-search event towards Medellín. Optional source
// columns are pointer fields; a nil value means the column was absent or null
// for that row.
type SearchRecord struct {
	OrigCityCode  string    `json:"ond_orig_city_code"`
	OrigCtryCode  string    `json:"ond_orig_ctry_code"`
	CreationDate  time.Time `json:"creation_date"`
	DepDate       time.Time `json:"ond_orig_dep_date"`
	NbPaxTogether *int      `json:"nb_pax_together"`
	// StayDuration is nights at destination; -1 marks a one-way search and is
	// excluded from all stay aggregates.
	StayDuration *float64 `json:"stay_duration"`

	// Derived at load time.
	LeadTime    int `json:"lead_time"`
	SearchMonth int `json:"search_month"`
	SearchYear  int `json:"search_year"`
	DepMonth    int `json:"dep_month"`
}

// BookingRecord is one confirmed reservation towards Medellín.
type BookingRecord struct {
	BoardCityCode      string    `json:"trip_board_city_code"`
	BoardCtryCode      string    `json:"trip_board_ctry_code"`
	BoardCtryName      string    `json:"trip_board_ctry_name"`
	CreationDate       time.Time `json:"creation_date"`
	TripDepDate        time.Time `json:"trip_dep_date"`
	OndPax             *int      `json:"ond_pax"`
	NbPaxTogether      *int      `json:"nb_pax_together"`
	CabinClass         *string   `json:"ond_cab_class"`
	AvgIndicativePrice *float64  `json:"avg_indicative_price"`
	BusinessLeisure    *string   `json:"business_leisure"`
	OnlineOffline      *string   `json:"online_offline"`
	AgencyProfile      *string   `json:"travel_agency_profile"`
	TripClass          *string   `json:"trip_class"`
	DaysAtDestination  *float64  `json:"days_at_destination"`

	// Derived at load time.
	BookingMonth    int `json:"booking_month"`
	BookingYear     int `json:"booking_year"`
	BookingLeadTime int `json:"booking_lead_time"`
}
