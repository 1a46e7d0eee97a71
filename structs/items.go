package structs

import (
	"errors"
	"strings"

	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// domain records
//*******************************************

// TRANSFER_PREFIX marks synthetic intra-city transfer legs. Any departure
// whose id carries this prefix is priced at zero and handled as a walk
// between the two stations of a city.
const TRANSFER_PREFIX = "transfer_"

type Station struct {
	ID         string
	Kind       StationKind
	City       int32
	Departures List[*Departure]
}

// Departure is a single scheduled leg between two stations, or a synthetic
// intra-city transfer. DepartureTime and ArrivalTime are minutes of day,
// From and To are station indices into the owning country.
type Departure struct {
	ID            string
	From          int32
	To            int32
	DepartureTime int32
	ArrivalTime   int32
	Price         int32
	MinWait       int32

	// AbsDeparture is the monotonic minute the leg departs at inside an
	// assembled route, -1 on schedule entries.
	AbsDeparture int64
}

func (self *Departure) IsTransfer() bool {
	return strings.HasPrefix(self.ID, TRANSFER_PREFIX)
}

// Duration in minutes, wrapping overnight legs past midnight.
func (self *Departure) Duration() int32 {
	minutes := self.ArrivalTime - self.DepartureTime
	if minutes < 0 {
		minutes += MINUTES_PER_DAY
	}
	return minutes
}

type City struct {
	Name         string
	Row          int32
	Col          int32
	BusStation   int32
	TrainStation int32
}

// StationOfKind returns the city's station index of the given kind, -1 if
// the city has none.
func (self *City) StationOfKind(kind StationKind) int32 {
	if kind == BUS {
		return self.BusStation
	}
	return self.TrainStation
}

//*******************************************
// country
//*******************************************

var (
	ErrCellOccupied     = errors.New("structs: grid cell already holds a city")
	ErrStationExists    = errors.New("structs: city already has a station of this kind")
	ErrDuplicateStation = errors.New("structs: station id already in use")
	ErrOutOfGrid        = errors.New("structs: coordinates outside the grid")
)

// Country owns the city and station arenas. Cross-references between
// cities and stations are indices into these arenas, -1 meaning none.
type Country struct {
	rows        int32
	cols        int32
	grid        Array[int32]
	cities      List[*City]
	stations    List[*Station]
	station_ids Dict[string, int32]
	city_names  Dict[string, int32]
}

func NewCountry(rows, cols int32) *Country {
	grid := NewArray[int32](int(rows * cols))
	for i := 0; i < grid.Length(); i++ {
		grid[i] = -1
	}
	return &Country{
		rows:        rows,
		cols:        cols,
		grid:        grid,
		cities:      NewList[*City](int(rows * cols)),
		stations:    NewList[*Station](int(rows*cols) * 2),
		station_ids: NewDict[string, int32](int(rows*cols) * 2),
		city_names:  NewDict[string, int32](int(rows * cols)),
	}
}

func (self *Country) Rows() int32 {
	return self.rows
}
func (self *Country) Cols() int32 {
	return self.cols
}
func (self *Country) CityCount() int {
	return self.cities.Length()
}
func (self *Country) StationCount() int {
	return self.stations.Length()
}
func (self *Country) GetCity(city int32) *City {
	return self.cities[city]
}
func (self *Country) GetStation(station int32) *Station {
	return self.stations[station]
}

func (self *Country) IsCity(city int32) bool {
	return city >= 0 && int(city) < self.cities.Length()
}

// CityAt returns the city index at a grid cell, -1 for empty cells.
func (self *Country) CityAt(row, col int32) int32 {
	if row < 0 || row >= self.rows || col < 0 || col >= self.cols {
		return -1
	}
	return self.grid[row*self.cols+col]
}

func (self *Country) FindCity(name string) (int32, bool) {
	city, ok := self.city_names[name]
	return city, ok
}

func (self *Country) FindStation(id string) (int32, bool) {
	station, ok := self.station_ids[id]
	return station, ok
}

func (self *Country) AddCity(name string, row, col int32) (int32, error) {
	if row < 0 || row >= self.rows || col < 0 || col >= self.cols {
		return -1, ErrOutOfGrid
	}
	if self.grid[row*self.cols+col] != -1 {
		return -1, ErrCellOccupied
	}
	city := int32(self.cities.Length())
	self.cities.Add(&City{
		Name:         name,
		Row:          row,
		Col:          col,
		BusStation:   -1,
		TrainStation: -1,
	})
	self.grid[row*self.cols+col] = city
	self.city_names[name] = city
	return city, nil
}

func (self *Country) AddStation(id string, kind StationKind, city int32) (int32, error) {
	if self.station_ids.ContainsKey(id) {
		return -1, ErrDuplicateStation
	}
	c := self.cities[city]
	if c.StationOfKind(kind) != -1 {
		return -1, ErrStationExists
	}
	station := int32(self.stations.Length())
	self.stations.Add(&Station{
		ID:         id,
		Kind:       kind,
		City:       city,
		Departures: NewList[*Departure](4),
	})
	if kind == BUS {
		c.BusStation = station
	} else {
		c.TrainStation = station
	}
	self.station_ids[id] = station
	return station, nil
}

func (self *Country) AddDeparture(id string, from, to int32, departure, duration, price, min_wait int32) *Departure {
	dep := &Departure{
		ID:            id,
		From:          from,
		To:            to,
		DepartureTime: departure,
		ArrivalTime:   TimeOfDay(int64(departure) + int64(duration)),
		Price:         price,
		MinWait:       min_wait,
		AbsDeparture:  -1,
	}
	self.stations[from].Departures.Add(dep)
	return dep
}

//*******************************************
// route
//*******************************************

// Route is an assembled journey. Legs carry their AbsDeparture minute,
// TotalTime is the absolute arrival minute of the last leg.
type Route struct {
	From       int32
	To         int32
	Legs       List[*Departure]
	TotalPrice int32
	TotalTime  int64
	Transfers  int32
}
