package structs

import (
	"encoding/json"
	"errors"
)

//*******************************************
// enums
//*******************************************

type StationKind byte

const (
	BUS   StationKind = 0
	TRAIN StationKind = 1
)

func (self StationKind) String() string {
	switch self {
	case BUS:
		return "bus"
	case TRAIN:
		return "train"
	default:
		panic("unknown station kind")
	}
}
func (self StationKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *StationKind) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = StationKindFromString(typ)
	return err
}

func StationKindFromString(s string) (StationKind, error) {
	switch s {
	case "bus":
		return BUS, nil
	case "train":
		return TRAIN, nil
	default:
		return BUS, errors.New("unknown station kind")
	}
}
