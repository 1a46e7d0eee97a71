package main

import (
	"github.com/ttpr0/go-transit/receipts"
	"github.com/ttpr0/go-transit/routing"
	"github.com/ttpr0/go-transit/structs"
	"golang.org/x/exp/slog"
)

//**********************************************************
// routing requests and responses
//**********************************************************

type RoutesRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Criterion string `json:"criterion"`
	K         int    `json:"k"`
}

type LegResponse struct {
	ID           string `json:"id"`
	From         string `json:"from"`
	To           string `json:"to"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Price        int32  `json:"price"`
	Transfer     bool   `json:"transfer"`
	AbsDeparture int64  `json:"absolute_departure"`
}

type JourneyResponse struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Legs        []LegResponse `json:"legs"`
	TotalPrice  int32         `json:"total_price"`
	TotalTime   int64         `json:"total_time"`
	Transfers   int32         `json:"transfers"`
}

type RoutesResponse struct {
	Status string            `json:"status"`
	Routes []JourneyResponse `json:"routes"`
}

func NewJourneyResponse(country *structs.Country, route *structs.Route) JourneyResponse {
	legs := make([]LegResponse, 0, route.Legs.Length())
	for _, leg := range route.Legs {
		legs = append(legs, LegResponse{
			ID:           leg.ID,
			From:         country.GetStation(leg.From).ID,
			To:           country.GetStation(leg.To).ID,
			Departure:    structs.FormatTimeOfDay(leg.DepartureTime),
			Arrival:      structs.FormatTimeOfDay(leg.ArrivalTime),
			Price:        leg.Price,
			Transfer:     leg.IsTransfer(),
			AbsDeparture: leg.AbsDeparture,
		})
	}
	return JourneyResponse{
		Origin:      country.GetCity(route.From).Name,
		Destination: country.GetCity(route.To).Name,
		Legs:        legs,
		TotalPrice:  route.TotalPrice,
		TotalTime:   route.TotalTime,
		Transfers:   route.Transfers,
	}
}

//**********************************************************
// routing handlers
//**********************************************************

func HandleRoutesRequest(req RoutesRequest) Result {
	country := MANAGER.GetCountry()
	from, ok := country.FindCity(req.From)
	if !ok {
		return BadRequest("unknown origin city: " + req.From)
	}
	to, ok := country.FindCity(req.To)
	if !ok {
		return BadRequest("unknown destination city: " + req.To)
	}
	criterion, err := routing.CriterionFromString(req.Criterion)
	if err != nil {
		return BadRequest(err.Error())
	}

	result, err := MANAGER.GetEngine().KShortest(from, to, criterion, req.K)
	if err != nil {
		return BadRequest(err.Error())
	}
	slog.Debug("query finished",
		slog.String("status", result.Status.String()),
		slog.Int("routes", result.Routes.Length()),
	)

	routes := make([]JourneyResponse, 0, result.Routes.Length())
	for _, route := range result.Routes {
		routes = append(routes, NewJourneyResponse(country, route))
	}
	return OK(RoutesResponse{
		Status: result.Status.String(),
		Routes: routes,
	})
}

//**********************************************************
// receipt handlers
//**********************************************************

type ReceiptResponse struct {
	File string `json:"file"`
}

func HandleReceiptRequest(req JourneyResponse) Result {
	receipt := receipts.Receipt{
		Origin:      req.Origin,
		Destination: req.Destination,
		TotalPrice:  req.TotalPrice,
	}
	for _, leg := range req.Legs {
		receipt.Legs = append(receipt.Legs, receipts.ReceiptLeg{
			From:      leg.From,
			To:        leg.To,
			Departure: leg.Departure,
			Arrival:   leg.Arrival,
			Price:     leg.Price,
		})
	}
	file, err := receipts.Issue(receipt, MANAGER.ReceiptDir())
	if err != nil {
		return BadRequest(err.Error())
	}
	return OK(ReceiptResponse{File: file})
}

func HandleReceiptSummaryRequest(req none) Result {
	summary, err := receipts.Summarize(MANAGER.ReceiptDir())
	if err != nil {
		return BadRequest(err.Error())
	}
	return OK(summary)
}
