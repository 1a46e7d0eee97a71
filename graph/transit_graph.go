package graph

import (
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// transit-graph
//*******************************************

// TransitGraph is the per-station adjacency over a country, including the
// synthetic intra-city transfer legs. It is immutable once built and safe
// to share between concurrent queries.
type TransitGraph struct {
	country   *structs.Country
	adjacency Array[List[*structs.Departure]]
}

func (self *TransitGraph) StationCount() int {
	return self.country.StationCount()
}
func (self *TransitGraph) CityCount() int {
	return self.country.CityCount()
}
func (self *TransitGraph) GetStation(station int32) *structs.Station {
	return self.country.GetStation(station)
}
func (self *TransitGraph) GetCity(city int32) *structs.City {
	return self.country.GetCity(city)
}
func (self *TransitGraph) IsCity(city int32) bool {
	return self.country.IsCity(city)
}

func (self *TransitGraph) GetExplorer() *TransitGraphExplorer {
	return &TransitGraphExplorer{graph: self}
}

//*******************************************
// transit-graph explorer
//*******************************************

type TransitGraphExplorer struct {
	graph *TransitGraph
}

// ForOutgoing iterates the outgoing legs of a station in insertion order,
// scheduled legs first, the transfer leg last.
func (self *TransitGraphExplorer) ForOutgoing(station int32, callback func(*structs.Departure)) {
	for _, dep := range self.graph.adjacency[station] {
		callback(dep)
	}
}
