package routing

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

//*******************************************
// criterion
//*******************************************

type Criterion byte

const (
	TIME      Criterion = 0
	PRICE     Criterion = 1
	TRANSFERS Criterion = 2
)

func (self Criterion) String() string {
	switch self {
	case TIME:
		return "time"
	case PRICE:
		return "price"
	case TRANSFERS:
		return "transfers"
	default:
		panic("unknown criterion")
	}
}
func (self Criterion) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Criterion) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = CriterionFromString(typ)
	return err
}
func (self Criterion) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *Criterion) UnmarshalYAML(value *yaml.Node) error {
	typ, err := CriterionFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func CriterionFromString(s string) (Criterion, error) {
	switch s {
	case "time":
		return TIME, nil
	case "price":
		return PRICE, nil
	case "transfers":
		return TRANSFERS, nil
	default:
		return TIME, errors.New("unknown criterion: " + s)
	}
}

//*******************************************
// status
//*******************************************

type Status byte

const (
	STATUS_OK               Status = 0
	STATUS_NO_ROUTE         Status = 1
	STATUS_BUDGET_EXHAUSTED Status = 2
)

func (self Status) String() string {
	switch self {
	case STATUS_OK:
		return "ok"
	case STATUS_NO_ROUTE:
		return "no_route"
	case STATUS_BUDGET_EXHAUSTED:
		return "budget_exhausted"
	default:
		panic("unknown status")
	}
}
func (self Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}

//*******************************************
// errors
//*******************************************

var (
	// ErrInvalidQuery is returned before any search when origin equals
	// destination or k is not positive.
	ErrInvalidQuery = errors.New("routing: invalid query")

	// ErrUnknownCity is returned before any search when a requested city
	// is not part of the model.
	ErrUnknownCity = errors.New("routing: unknown city")
)

//*******************************************
// engine options
//*******************************************

// Options holds the pruning heuristics of the engine. The defaults keep
// the search finite on dense networks, callers may loosen or tighten them
// per deployment.
type Options struct {
	MaxIterations  int   `yaml:"max-iterations"`
	MaxVisitsTime  int   `yaml:"max-visits-time"`
	MaxVisitsOther int   `yaml:"max-visits-other"`
	MaxLegs        int   `yaml:"max-legs"`
	MaxTotalTime   int64 `yaml:"max-total-time"`
	MaxTransfers   int32 `yaml:"max-transfers"`

	TimeTransferPenalty  float64 `yaml:"time-transfer-penalty"`
	PriceTransferPenalty float64 `yaml:"price-transfer-penalty"`

	TimeToleranceMin     float64 `yaml:"time-tolerance-min"`
	TimeToleranceFactor  float64 `yaml:"time-tolerance-factor"`
	PriceToleranceMin    float64 `yaml:"price-tolerance-min"`
	PriceToleranceFactor float64 `yaml:"price-tolerance-factor"`
	TransferTolerance    float64 `yaml:"transfer-tolerance"`
}

func DefaultOptions() Options {
	return Options{
		MaxIterations:  1000000,
		MaxVisitsTime:  100,
		MaxVisitsOther: 50,
		MaxLegs:        100,
		MaxTotalTime:   20 * 1440,
		MaxTransfers:   30,

		TimeTransferPenalty:  5,
		PriceTransferPenalty: 1.0,

		TimeToleranceMin:     120,
		TimeToleranceFactor:  0.5,
		PriceToleranceMin:    100,
		PriceToleranceFactor: 0.4,
		TransferTolerance:    1,
	}
}

func (self *Options) max_visits(criterion Criterion) int {
	if criterion == TIME {
		return self.MaxVisitsTime
	}
	return self.MaxVisitsOther
}

func (self *Options) tolerance(criterion Criterion, best float64) float64 {
	switch criterion {
	case TIME:
		return max(self.TimeToleranceMin, best*self.TimeToleranceFactor)
	case PRICE:
		return max(self.PriceToleranceMin, best*self.PriceToleranceFactor)
	default:
		return self.TransferTolerance
	}
}
