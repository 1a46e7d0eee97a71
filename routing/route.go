package routing

import (
	"fmt"
	"strings"

	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// route assembly
//*******************************************

// CountTransfers counts boundaries between consecutive scheduled legs with
// different leg ids. Transfer legs are skipped during the scan and never
// count themselves.
func CountTransfers(legs List[*structs.Departure]) int32 {
	if legs.Length() <= 1 {
		return 0
	}
	var transfers int32 = 0
	var previous *structs.Departure
	for _, leg := range legs {
		if leg.IsTransfer() {
			continue
		}
		if previous != nil && previous.ID != leg.ID {
			transfers += 1
		}
		previous = leg
	}
	return transfers
}

// PathSignature builds the canonical identity of a leg sequence used for
// duplicate suppression.
func PathSignature(g *graph.TransitGraph, legs List[*structs.Departure]) string {
	var signature strings.Builder
	for i, leg := range legs {
		signature.WriteString(fmt.Sprintf("%d:%s->%s_%s_%s;",
			i,
			g.GetStation(leg.From).ID,
			g.GetStation(leg.To).ID,
			leg.ID,
			structs.FormatTimeOfDay(leg.DepartureTime),
		))
	}
	return signature.String()
}

func assemble_route(from, to int32, legs List[*structs.Departure], total_time int64) *structs.Route {
	var total_price int32 = 0
	for _, leg := range legs {
		if leg.IsTransfer() {
			continue
		}
		total_price += leg.Price
	}
	return &structs.Route{
		From:       from,
		To:         to,
		Legs:       legs,
		TotalPrice: total_price,
		TotalTime:  total_time,
		Transfers:  CountTransfers(legs),
	}
}

// compare_routes is the total order of the final ranking: the criterion
// first, total time breaking ties for price and transfers.
func compare_routes(criterion Criterion) func(a, b *structs.Route) int {
	return func(a, b *structs.Route) int {
		switch criterion {
		case PRICE:
			if a.TotalPrice != b.TotalPrice {
				return int(a.TotalPrice - b.TotalPrice)
			}
			return compare_time(a, b)
		case TRANSFERS:
			if a.Transfers != b.Transfers {
				return int(a.Transfers - b.Transfers)
			}
			return compare_time(a, b)
		default:
			return compare_time(a, b)
		}
	}
}

func compare_time(a, b *structs.Route) int {
	if a.TotalTime < b.TotalTime {
		return -1
	}
	if a.TotalTime > b.TotalTime {
		return 1
	}
	return 0
}
