package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-transit/structs"
)

func build_test_country(t *testing.T) *structs.Country {
	country := structs.NewCountry(1, 3)
	c0, err := country.AddCity("grad_0_0", 0, 0)
	require.NoError(t, err)
	c1, err := country.AddCity("grad_0_1", 0, 1)
	require.NoError(t, err)
	c2, err := country.AddCity("grad_0_2", 0, 2)
	require.NoError(t, err)

	// both kinds, bus only, train only
	country.AddStation("A_0_0", structs.BUS, c0)
	country.AddStation("Z_0_0", structs.TRAIN, c0)
	country.AddStation("A_0_1", structs.BUS, c1)
	country.AddStation("Z_0_2", structs.TRAIN, c2)
	return country
}

func TestBuildTransitGraphTransfers(t *testing.T) {
	country := build_test_country(t)
	g := BuildTransitGraph(country)
	require.Equal(t, 4, g.StationCount())

	outgoing := func(station string) []*structs.Departure {
		idx, ok := country.FindStation(station)
		require.True(t, ok)
		deps := []*structs.Departure{}
		g.GetExplorer().ForOutgoing(idx, func(dep *structs.Departure) {
			deps = append(deps, dep)
		})
		return deps
	}

	// a transfer exists in both directions iff the city has both stations
	bus := outgoing("A_0_0")
	require.Len(t, bus, 1)
	assert.Equal(t, "transfer_A_0_0_to_Z_0_0", bus[0].ID)
	assert.True(t, bus[0].IsTransfer())
	assert.Equal(t, int32(0), bus[0].Price)

	train := outgoing("Z_0_0")
	require.Len(t, train, 1)
	assert.Equal(t, "transfer_Z_0_0_to_A_0_0", train[0].ID)

	// single-station cities get no transfer edge
	assert.Empty(t, outgoing("A_0_1"))
	assert.Empty(t, outgoing("Z_0_2"))
}

func TestBuildTransitGraphKeepsSchedule(t *testing.T) {
	country := build_test_country(t)
	a0, _ := country.FindStation("A_0_0")
	a1, _ := country.FindStation("A_0_1")
	country.AddDeparture("A_0_0_to_A_0_1", a0, a1, 480, 60, 10, 5)
	// zero-duration legs are admissible, they collapse to an instant hop
	country.AddDeparture("instant", a0, a1, 500, 0, 1, 0)

	g := BuildTransitGraph(country)
	deps := []*structs.Departure{}
	g.GetExplorer().ForOutgoing(a0, func(dep *structs.Departure) {
		deps = append(deps, dep)
	})
	// schedule order is kept, the transfer edge comes last
	require.Len(t, deps, 3)
	assert.Equal(t, "A_0_0_to_A_0_1", deps[0].ID)
	assert.Equal(t, "instant", deps[1].ID)
	assert.True(t, deps[2].IsTransfer())
}
