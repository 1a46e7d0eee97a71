package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ttpr0/go-transit/structs"
	"golang.org/x/exp/slog"
)

//*******************************************
// network parser
//*******************************************

type NetworkDocument struct {
	CountryMap [][]string       `json:"countryMap"`
	Stations   []StationEntry   `json:"stations"`
	Departures []DepartureEntry `json:"departures"`
}

type StationEntry struct {
	City         string `json:"city"`
	BusStation   string `json:"busStation"`
	TrainStation string `json:"trainStation"`
}

type DepartureEntry struct {
	Type            string `json:"type"`
	From            string `json:"from"`
	To              string `json:"to"`
	DepartureTime   string `json:"departureTime"`
	Duration        int32  `json:"duration"`
	Price           int32  `json:"price"`
	MinTransferTime int32  `json:"minTransferTime"`
}

// ParseNetwork reads a network document from file and builds the country.
func ParseNetwork(file string) (*structs.Country, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var document NetworkDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, err
	}
	return BuildCountry(&document)
}

// BuildCountry converts a parsed network document into the country arena.
// Departures referencing unknown stations or cities are skipped with a
// warning, malformed grid or station entries fail the load.
func BuildCountry(document *NetworkDocument) (*structs.Country, error) {
	rows := int32(len(document.CountryMap))
	if rows == 0 {
		return nil, errors.New("parser: empty country map")
	}
	cols := int32(len(document.CountryMap[0]))
	country := structs.NewCountry(rows, cols)

	for r, row := range document.CountryMap {
		if int32(len(row)) != cols {
			return nil, errors.New("parser: ragged country map")
		}
		for c, name := range row {
			if name == "" {
				continue
			}
			if _, err := country.AddCity(name, int32(r), int32(c)); err != nil {
				return nil, err
			}
		}
	}

	for _, entry := range document.Stations {
		city, ok := country.FindCity(entry.City)
		if !ok {
			return nil, fmt.Errorf("parser: station entry for unknown city %s", entry.City)
		}
		if entry.BusStation != "" {
			if _, err := country.AddStation(entry.BusStation, structs.BUS, city); err != nil {
				return nil, err
			}
		}
		if entry.TrainStation != "" {
			if _, err := country.AddStation(entry.TrainStation, structs.TRAIN, city); err != nil {
				return nil, err
			}
		}
	}

	for _, entry := range document.Departures {
		kind, err := structs.StationKindFromString(entry.Type)
		if err != nil {
			slog.Warn("skipping departure with unknown type: " + entry.Type)
			continue
		}
		from, ok := country.FindStation(entry.From)
		if !ok {
			slog.Warn("skipping departure from unknown station: " + entry.From)
			continue
		}
		to_city, ok := country.FindCity(entry.To)
		if !ok {
			slog.Warn("skipping departure to unknown city: " + entry.To)
			continue
		}
		to := country.GetCity(to_city).StationOfKind(kind)
		if to == -1 {
			slog.Warn("skipping departure, destination city has no " + kind.String() + " station: " + entry.To)
			continue
		}
		departure, err := structs.ParseTimeOfDay(entry.DepartureTime)
		if err != nil {
			slog.Warn("skipping departure with invalid time: " + entry.DepartureTime)
			continue
		}
		if entry.Duration < 0 || entry.Price < 0 || entry.MinTransferTime < 0 {
			slog.Warn("skipping departure with negative duration, price or wait: " + entry.From)
			continue
		}
		id := entry.From + "_to_" + country.GetStation(to).ID
		country.AddDeparture(id, from, to, departure, entry.Duration, entry.Price, entry.MinTransferTime)
	}

	return country, nil
}
