package leaderboarddomain

import (
	"fmt"
	"slices"
	"strings"
)

// EventType selects the points table for an event.
type EventType string

const (
	EventStandard EventType = "STANDARD"
	EventMajor    EventType = "MAJOR"
)

// ParseEventType accepts the config spelling of an event type.
func ParseEventType(s string) (EventType, error) {
	switch EventType(strings.ToUpper(strings.TrimSpace(s))) {
	case EventStandard, "":
		return EventStandard, nil
	case EventMajor:
		return EventMajor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
	}
}

// standardPoints[i] is the award for rank i+1. Ranks past the end earn 0.
var standardPoints = [...]float64{
	50, 45, 42, 40, 38, 36, 34, 32, 30, 29,
	28, 27, 26, 25, 24, 23, 22, 21, 20, 19,
	18, 17, 16, 15, 14, 13, 12, 11, 10, 9,
	8, 8, 7, 7, 6, 6, 5, 5, 4, 4,
	3, 3, 3, 2, 2, 2, 1, 1, 1, 1,
}

// PointsTable maps a rank to the points it earns.
type PointsTable struct {
	points []float64
}

// PointsTableFor returns the table for an event type. Majors pay double.
func PointsTableFor(eventType EventType) (PointsTable, error) {
	multiplier := 1.0
	switch eventType {
	case EventStandard:
	case EventMajor:
		multiplier = 2
	default:
		return PointsTable{}, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}

	points := make([]float64, len(standardPoints))
	for i, p := range standardPoints {
		points[i] = p * multiplier
	}
	return PointsTable{points: points}, nil
}

// MaxRank is the last rank that earns points.
func (t PointsTable) MaxRank() int {
	return len(t.points)
}

// PointsFor returns the award for a single rank.
func (t PointsTable) PointsFor(rank int) (float64, error) {
	if rank < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	if rank > len(t.points) {
		return 0, nil
	}
	return t.points[rank-1], nil
}

// AllocatePoints awards points by rank. A rank shared by k players pays each
// of them the average of the awards for that rank and the k-1 below it.
func AllocatePoints[K comparable](ranks map[K]int, table PointsTable) (map[K]float64, error) {
	points := make(map[K]float64, len(ranks))
	if len(ranks) == 0 {
		return points, nil
	}

	byRank := make(map[int][]K)
	for k, r := range ranks {
		if r < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRank, r)
		}
		byRank[r] = append(byRank[r], k)
	}

	occupied := make([]int, 0, len(byRank))
	for r := range byRank {
		occupied = append(occupied, r)
	}
	slices.Sort(occupied)

	for _, r := range occupied {
		tied := byRank[r]
		total := 0.0
		for offset := range tied {
			p, err := table.PointsFor(r + offset)
			if err != nil {
				return nil, err
			}
			total += p
		}
		share := total / float64(len(tied))
		for _, k := range tied {
			points[k] = share
		}
	}
	return points, nil
}
