package routing

import (
	"sync/atomic"

	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/structs"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slices"
)

//*******************************************
// k-shortest-paths engine
//*******************************************

// Engine runs time-expanded k-shortest-paths queries against an immutable
// transit graph. An Engine holds no per-query state, one instance may serve
// concurrent queries.
type Engine struct {
	graph *graph.TransitGraph
	opts  Options
	abort *atomic.Bool
}

func NewEngine(g *graph.TransitGraph, opts Options) *Engine {
	return &Engine{
		graph: g,
		opts:  opts,
	}
}

// SetAbort installs an external abort flag checked between frontier pops.
func (self *Engine) SetAbort(flag *atomic.Bool) {
	self.abort = flag
}

type Result struct {
	Routes List[*structs.Route]
	Status Status
}

// path is one frontier state. Every enqueued state owns its own copy of
// the segment list and the visited set, the leg cap keeps the copies small.
type path struct {
	station   int32
	segments  List[*structs.Departure]
	cost      float64
	arrival   int64
	total     int64
	transfers int32
	visited   Dict[int32, bool]
}

// KShortest computes up to k distinct journeys from the origin city to the
// destination city ranked by the criterion. Both stations of the origin
// seed the frontier, both stations of the destination terminate it. The
// search clock starts at minute 0 of day 0.
func (self *Engine) KShortest(from, to int32, criterion Criterion, k int) (Result, error) {
	if !self.graph.IsCity(from) || !self.graph.IsCity(to) {
		return Result{}, ErrUnknownCity
	}
	if from == to || k <= 0 {
		return Result{}, ErrInvalidQuery
	}

	heap := NewPriorityQueue[*path, float64](100)
	start_city := self.graph.GetCity(from)
	for _, station := range [2]int32{start_city.BusStation, start_city.TrainStation} {
		if station == -1 {
			continue
		}
		visited := NewDict[int32, bool](8)
		visited[station] = true
		heap.Enqueue(&path{
			station:  station,
			segments: NewList[*structs.Departure](4),
			visited:  visited,
		}, 0)
	}

	explorer := self.graph.GetExplorer()
	found := NewList[*structs.Route](k)
	seen_signatures := NewDict[string, bool](16)
	station_best_cost := NewDict[int32, float64](64)
	station_visits := NewDict[int32, int32](64)
	max_visits := self.opts.max_visits(criterion)

	iterations := 0
	for heap.Length() > 0 && found.Length() < k && iterations < self.opts.MaxIterations {
		if self.abort != nil && self.abort.Load() {
			break
		}
		iterations += 1

		curr, _ := heap.Dequeue()

		if self.graph.GetStation(curr.station).City == to {
			if curr.segments.Length() > 0 && has_scheduled_leg(curr.segments) {
				signature := PathSignature(self.graph, curr.segments)
				if !seen_signatures.ContainsKey(signature) {
					seen_signatures[signature] = true
					found.Add(assemble_route(from, to, curr.segments, curr.total))
				}
			}
			continue
		}

		visits := station_visits[curr.station]
		if int(visits) >= max_visits {
			continue
		}
		station_visits[curr.station] = visits + 1

		if best, ok := station_best_cost[curr.station]; ok {
			if curr.cost > best+self.opts.tolerance(criterion, best) {
				continue
			}
		} else {
			station_best_cost[curr.station] = curr.cost
		}

		explorer.ForOutgoing(curr.station, func(dep *structs.Departure) {
			self.expand(&heap, curr, dep, criterion)
		})
	}

	status := STATUS_OK
	if iterations >= self.opts.MaxIterations {
		status = STATUS_BUDGET_EXHAUSTED
	} else if found.Length() == 0 {
		status = STATUS_NO_ROUTE
	}

	slices.SortStableFunc(found, compare_routes(criterion))
	if found.Length() > k {
		found = found[:k]
	}
	return Result{Routes: found, Status: status}, nil
}

// expand enqueues the successor state for one outgoing leg, aligning
// scheduled legs onto the next feasible wall-clock slot and materializing
// transfer legs at the current arrival minute.
func (self *Engine) expand(heap *PriorityQueue[*path, float64], curr *path, dep *structs.Departure, criterion Criterion) {
	if curr.visited.ContainsKey(dep.To) {
		return
	}
	if dep.IsTransfer() && curr.segments.Length() == 0 {
		return
	}

	var next_departure, travel, waiting int64
	transfers := curr.transfers
	var leg *structs.Departure
	if dep.IsTransfer() {
		// the walk takes the minimum connection time of the last scheduled leg
		min_wait := last_min_wait(curr.segments)
		next_departure = curr.arrival
		travel = int64(min_wait)
		waiting = 0
		leg = &structs.Departure{
			ID:            dep.ID,
			From:          dep.From,
			To:            dep.To,
			DepartureTime: structs.TimeOfDay(curr.arrival),
			ArrivalTime:   structs.TimeOfDay(curr.arrival + int64(min_wait)),
			Price:         0,
			MinWait:       min_wait,
			AbsDeparture:  curr.arrival,
		}
	} else {
		next_departure = structs.NextDeparture(curr.arrival, dep.DepartureTime, dep.MinWait)
		waiting = next_departure - curr.arrival
		travel = int64(dep.Duration())
		last := last_scheduled_leg(curr.segments)
		if last != nil && last.ID != dep.ID {
			transfers += 1
		}
		leg = &structs.Departure{
			ID:            dep.ID,
			From:          dep.From,
			To:            dep.To,
			DepartureTime: dep.DepartureTime,
			ArrivalTime:   dep.ArrivalTime,
			Price:         dep.Price,
			MinWait:       dep.MinWait,
			AbsDeparture:  next_departure,
		}
	}

	arrival := next_departure + travel
	total := curr.total + waiting + travel

	var cost float64
	switch criterion {
	case PRICE:
		cost = curr.cost
		if !dep.IsTransfer() {
			cost += float64(dep.Price)
		}
	case TRANSFERS:
		cost = float64(transfers)
	default:
		cost = float64(total)
	}
	if dep.IsTransfer() {
		switch criterion {
		case TIME:
			cost += self.opts.TimeTransferPenalty
		case PRICE:
			cost += self.opts.PriceTransferPenalty
		}
	}

	segments := curr.segments.Copy()
	segments.Add(leg)
	if segments.Length() > self.opts.MaxLegs {
		return
	}
	if total > self.opts.MaxTotalTime {
		return
	}
	if transfers > self.opts.MaxTransfers {
		return
	}
	if waiting < 0 {
		return
	}

	visited := curr.visited.Copy()
	visited[dep.To] = true
	heap.Enqueue(&path{
		station:   dep.To,
		segments:  segments,
		cost:      cost,
		arrival:   arrival,
		total:     total,
		transfers: transfers,
		visited:   visited,
	}, cost)
}

// last_scheduled_leg returns the most recent non-transfer leg, nil if none.
func last_scheduled_leg(segments List[*structs.Departure]) *structs.Departure {
	for i := segments.Length() - 1; i >= 0; i-- {
		if !segments[i].IsTransfer() {
			return segments[i]
		}
	}
	return nil
}

func last_min_wait(segments List[*structs.Departure]) int32 {
	last := last_scheduled_leg(segments)
	if last == nil {
		return 0
	}
	return last.MinWait
}

func has_scheduled_leg(segments List[*structs.Departure]) bool {
	return last_scheduled_leg(segments) != nil
}
