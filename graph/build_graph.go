package graph

import (
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// graph builder
//*******************************************

// BuildTransitGraph builds the adjacency for every station of the country.
// Scheduled legs are taken as loaded, a zero-priced transfer leg to the
// sibling station is appended whenever the city has both station kinds.
func BuildTransitGraph(country *structs.Country) *TransitGraph {
	adjacency := NewArray[List[*structs.Departure]](country.StationCount())
	for i := 0; i < country.StationCount(); i++ {
		station := country.GetStation(int32(i))
		edges := NewList[*structs.Departure](station.Departures.Length() + 1)
		for _, dep := range station.Departures {
			if dep.Duration() < 0 {
				continue
			}
			edges.Add(dep)
		}
		sibling := sibling_station(country, station)
		if sibling != -1 {
			other := country.GetStation(sibling)
			edges.Add(&structs.Departure{
				ID:            structs.TRANSFER_PREFIX + station.ID + "_to_" + other.ID,
				From:          int32(i),
				To:            sibling,
				DepartureTime: 0,
				ArrivalTime:   0,
				Price:         0,
				MinWait:       0,
				AbsDeparture:  -1,
			})
		}
		adjacency[i] = edges
	}
	return &TransitGraph{
		country:   country,
		adjacency: adjacency,
	}
}

func sibling_station(country *structs.Country, station *structs.Station) int32 {
	city := country.GetCity(station.City)
	if station.Kind == structs.BUS {
		return city.TrainStation
	}
	return city.BusStation
}
