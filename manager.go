package main

import (
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/parser"
	"github.com/ttpr0/go-transit/routing"
	"github.com/ttpr0/go-transit/structs"
	"golang.org/x/exp/slog"
)

// TransitManager loads the network once at startup and publishes the built
// graph to the handlers. The graph is immutable, queries share it freely.
func NewTransitManager(config Config) *TransitManager {
	country, err := parser.ParseNetwork(config.Source.Network)
	if err != nil {
		slog.Error("failed to load network: " + err.Error())
		panic(err)
	}
	slog.Info("network loaded",
		slog.Int("cities", country.CityCount()),
		slog.Int("stations", country.StationCount()),
	)
	g := graph.BuildTransitGraph(country)
	return &TransitManager{
		config:  config,
		country: country,
		graph:   g,
		engine:  routing.NewEngine(g, config.Engine),
	}
}

type TransitManager struct {
	config  Config
	country *structs.Country
	graph   *graph.TransitGraph
	engine  *routing.Engine
}

func (self *TransitManager) GetCountry() *structs.Country {
	return self.country
}

func (self *TransitManager) GetEngine() *routing.Engine {
	return self.engine
}

func (self *TransitManager) ReceiptDir() string {
	return self.config.Source.Receipts
}
