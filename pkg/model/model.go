package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RunStatus is the per-run status as reported by the timing provider.
// Providers emit dsq/out/off for different flavours of a scratched run;
// all of them collapse to dnf during scoring.
type RunStatus string

const (
	StatusClean RunStatus = "clean"
	StatusDirty RunStatus = "dirty"
	StatusDNF   RunStatus = "dnf"
	StatusDSQ   RunStatus = "dsq"
	StatusOut   RunStatus = "out"
	StatusOff   RunStatus = "off"
)

// Normalize maps the disqualification-like statuses to dnf. Past this
// point only clean, dirty and dnf exist.
func (s RunStatus) Normalize() RunStatus {
	lowered := RunStatus(strings.ToLower(string(s)))
	switch lowered {
	case StatusDSQ, StatusOut, StatusOff:
		return StatusDNF
	default:
		return lowered
	}
}

// RawRun is one raw timing tuple as delivered on the wire:
// [time, coneCount, status].
type RawRun struct {
	Time   float64
	Cones  int
	Status RunStatus
}

func (r RawRun) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{r.Time, r.Cones, string(r.Status)})
}

func (r *RawRun) UnmarshalJSON(data []byte) error {
	var tuple []interface{}
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 3 {
		return fmt.Errorf("run tuple must have 3 elements, got %d", len(tuple))
	}
	t, ok := tuple[0].(float64)
	if !ok {
		return fmt.Errorf("run time must be a number, got %T", tuple[0])
	}
	cones, ok := tuple[1].(float64)
	if !ok {
		return fmt.Errorf("run cone count must be a number, got %T", tuple[1])
	}
	status, ok := tuple[2].(string)
	if !ok {
		return fmt.Errorf("run status must be a string, got %T", tuple[2])
	}
	r.Time = t
	r.Cones = int(cones)
	r.Status = RunStatus(status)
	return nil
}

// SnapshotEntry is one entrant's record in a live snapshot. Runs holds one
// ordered run list per segment (heat).
type SnapshotEntry struct {
	MsrID      string     `json:"msrId"`
	Email      string     `json:"email"`
	Class      string     `json:"class"`
	CarNumber  string     `json:"carNumber"`
	DriverName string     `json:"driverName"`
	CarModel   string     `json:"carModel"`
	CarColor   string     `json:"carColor"`
	Sponsor    string     `json:"sponsor"`
	Runs       [][]RawRun `json:"runs"`
}

// Snapshot is one full live-results snapshot for an event.
type Snapshot struct {
	EventName string          `json:"eventName"`
	Entries   []SnapshotEntry `json:"entries"`
}

// ClassInfo is the configuration for one base class. A non-nil
// ClassGroupID means the class scores combined with every other class
// sharing that group.
type ClassInfo struct {
	ClassID        string  `json:"classId"`
	ShortName      string  `json:"shortName"`
	LongName       string  `json:"longName"`
	IndexValue     float64 `json:"indexValue"`
	ClassGroupID   *int64  `json:"classGroupId"`
	GroupShortName string  `json:"groupShortName"`
	GroupLongName  string  `json:"groupLongName"`
}

// ClassConfig maps uppercased class short names to their configuration.
type ClassConfig map[string]ClassInfo

type TrophyMode string

const (
	TrophyTopN       TrophyMode = "topn"
	TrophyPercentage TrophyMode = "percentage"
)

type TrophyConfig struct {
	Mode  TrophyMode `json:"mode"`
	Value float64    `json:"value"`
}

type ScoringMode string

const (
	ScoringSingleBest ScoringMode = "singlebest"
)

type EventConfig struct {
	ScoringMode        ScoringMode  `json:"scoringMode"`
	ConePenaltySeconds float64      `json:"conePenaltyInSeconds"`
	Trophy             TrophyConfig `json:"trophyConfiguration"`
}
