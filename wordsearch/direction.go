package wordsearch

import "fmt"

// A Direction is one of the eight compass directions a hidden word can run
// in. The zero value is North.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	}
	return "none"
}

// AllDirections returns the eight directions in enumeration order.
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// ParseDirection parses a compass abbreviation such as "N" or "SW".
func ParseDirection(s string) (Direction, error) {
	for _, d := range AllDirections() {
		if s == d.String() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid direction %q: permitted directions are N, NE, E, SE, S, SW, W, NW", s)
}

// slices returns every maximal 1-D slice of a width x height grid in this
// direction, as coordinate sequences in scan order. Slices never cross grid
// edges and there is no wraparound.
func (d Direction) slices(width, height int) [][]Coord {
	switch d {
	case North:
		return slicesNorth(width, height)
	case NorthEast:
		return slicesNorthEast(width, height)
	case East:
		return slicesEast(width, height)
	case SouthEast:
		return slicesSouthEast(width, height)
	case South:
		return slicesSouth(width, height)
	case SouthWest:
		return slicesSouthWest(width, height)
	case West:
		return slicesWest(width, height)
	case NorthWest:
		return slicesNorthWest(width, height)
	}
	return nil
}

func slicesSouth(width, height int) [][]Coord {
	out := make([][]Coord, 0, width)
	for x := 0; x < width; x++ {
		slice := make([]Coord, 0, height)
		for y := 0; y < height; y++ {
			slice = append(slice, Coord{x, y})
		}
		out = append(out, slice)
	}
	return out
}

func slicesNorth(width, height int) [][]Coord {
	return reverseAll(slicesSouth(width, height))
}

func slicesEast(width, height int) [][]Coord {
	out := make([][]Coord, 0, height)
	for y := 0; y < height; y++ {
		slice := make([]Coord, 0, width)
		for x := 0; x < width; x++ {
			slice = append(slice, Coord{x, y})
		}
		out = append(out, slice)
	}
	return out
}

func slicesWest(width, height int) [][]Coord {
	return reverseAll(slicesEast(width, height))
}

// slicesNorthEast walks each anti-diagonal rightward and upward.
func slicesNorthEast(width, height int) [][]Coord {
	out := make([][]Coord, 0, width+height-1)
	for diag := 0; diag < width+height-1; diag++ {
		var slice []Coord
		for x := max(0, diag-height+1); x <= min(width-1, diag); x++ {
			slice = append(slice, Coord{x, diag - x})
		}
		out = append(out, slice)
	}
	return out
}

func slicesSouthWest(width, height int) [][]Coord {
	return reverseAll(slicesNorthEast(width, height))
}

// slicesSouthEast walks each main diagonal rightward and downward.
func slicesSouthEast(width, height int) [][]Coord {
	out := make([][]Coord, 0, width+height-1)
	for diag := 0; diag < width+height-1; diag++ {
		var slice []Coord
		for x := max(0, diag-height+1); x <= min(width-1, diag); x++ {
			slice = append(slice, Coord{x, x - diag + height - 1})
		}
		out = append(out, slice)
	}
	return out
}

func slicesNorthWest(width, height int) [][]Coord {
	return reverseAll(slicesSouthEast(width, height))
}

func reverseAll(slices [][]Coord) [][]Coord {
	for _, slice := range slices {
		for i, j := 0, len(slice)-1; i < j; i, j = i+1, j-1 {
			slice[i], slice[j] = slice[j], slice[i]
		}
	}
	return slices
}
