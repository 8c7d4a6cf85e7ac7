package verify

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects how a solution payload is decoded. The surrounding system
// historically sent both encodings interchangeably, so callers should state
// the format explicitly; FormatAuto exists for the call sites that cannot.
type Format int

const (
	// FormatAuto detects the encoding: a payload consisting solely of '0'
	// and '1' runes with no separators is read as a bit string, anything
	// else as a literal list.
	FormatAuto Format = iota
	// FormatBitString is a positional encoding: rune i gives the value of
	// variable i (0-based), '1' for true.
	FormatBitString
	// FormatLiteralList is the DIMACS convention: whitespace-separated
	// signed literals, optionally prefixed with "v", terminated by 0.
	FormatLiteralList
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatBitString:
		return "bitstring"
	case FormatLiteralList:
		return "literal-list"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseSolution decodes a claimed assignment into a 0-based variable to
// value map. Variables the payload does not mention are absent from the
// map; they are never defaulted, so an incomplete claim surfaces later as a
// validation error instead of being silently padded.
func ParseSolution(text string, format Format, numVars int) (map[int]bool, error) {
	payload := strings.TrimSpace(text)
	if format == FormatAuto {
		format = detectFormat(payload)
	}
	switch format {
	case FormatBitString:
		return parseBitString(payload, numVars)
	case FormatLiteralList:
		return parseLiteralList(payload, numVars)
	default:
		return nil, fmt.Errorf("unknown solution format %v", format)
	}
}

func detectFormat(payload string) Format {
	if payload == "" {
		return FormatLiteralList
	}
	for _, r := range payload {
		if r != '0' && r != '1' {
			return FormatLiteralList
		}
	}
	// Only 0/1 runes and no separators. A bare "0" is the empty literal
	// list, not a one-variable bit string.
	if payload == "0" {
		return FormatLiteralList
	}
	return FormatBitString
}

func parseBitString(payload string, numVars int) (map[int]bool, error) {
	if len(payload) > numVars {
		return nil, fmt.Errorf("bit string has %d positions for %d variables", len(payload), numVars)
	}
	assignment := make(map[int]bool, len(payload))
	for i, r := range payload {
		switch r {
		case '0':
			assignment[i] = false
		case '1':
			assignment[i] = true
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", r, i)
		}
	}
	return assignment, nil
}

func parseLiteralList(payload string, numVars int) (map[int]bool, error) {
	assignment := make(map[int]bool)
	done := false
	for _, tok := range strings.Fields(payload) {
		if tok == "v" {
			continue
		}
		if done {
			return nil, fmt.Errorf("trailing token %q after terminating 0", tok)
		}
		lit, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid literal %q in solution", tok)
		}
		if lit == 0 {
			done = true
			continue
		}
		v := lit
		if v < 0 {
			v = -v
		}
		if v > numVars {
			return nil, fmt.Errorf("literal %d out of range for %d variables", lit, numVars)
		}
		val := lit > 0
		if prev, ok := assignment[v-1]; ok && prev != val {
			return nil, fmt.Errorf("conflicting assignments for variable %d", v)
		}
		assignment[v-1] = val
	}
	return assignment, nil
}
