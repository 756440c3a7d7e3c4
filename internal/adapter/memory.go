package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ResourceGovernor reports how much of the system memory is in use.
type ResourceGovernor interface {
	// MemoryPressure returns the used fraction of memory in [0,1], sampled
	// fresh on every call.
	MemoryPressure() (float64, error)
}

const (
	procMemInfoPath  = "/proc/meminfo"
	memTotalKey      = "MemTotal:"
	memAvailableKey  = "MemAvailable:"
	minMemInfoFields = 2
	kibibyte         = uint64(1024)
	memInfoUnitKiB   = "kB"
)

var errNoMemInfo = errors.New("memory statistics unavailable")

// MemInfoGovernor samples /proc/meminfo and falls back to sysinfo(2) when
// the file cannot be read.
type MemInfoGovernor struct {
	path     string
	fallback func() (total, available uint64, err error)
}

// NewMemInfoGovernor returns a governor reading the host memory statistics.
func NewMemInfoGovernor() *MemInfoGovernor {
	return &MemInfoGovernor{path: procMemInfoPath, fallback: systemMemory}
}

// MemoryPressure implements ResourceGovernor.
func (g *MemInfoGovernor) MemoryPressure() (float64, error) {
	total, available, err := g.sample()
	if err != nil {
		return 0, err
	}

	used := total - min(available, total)
	ratio := float64(used) / float64(total)

	slog.Debug("sampled memory",
		"used", humanize.IBytes(used),
		"total", humanize.IBytes(total),
		"ratio", ratio,
	)

	return ratio, nil
}

func (g *MemInfoGovernor) sample() (uint64, uint64, error) {
	file, err := os.Open(g.path)
	if err == nil {
		defer file.Close()

		total, available, parseErr := parseMemInfo(file)
		if parseErr == nil {
			return total, available, nil
		}

		slog.Debug("failed to parse meminfo", "path", g.path, "error", parseErr)
	}

	if g.fallback == nil {
		return 0, 0, errNoMemInfo
	}

	total, available, err := g.fallback()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errNoMemInfo, err)
	}

	if total == 0 {
		return 0, 0, errNoMemInfo
	}

	return total, available, nil
}

// parseMemInfo extracts MemTotal and MemAvailable, in bytes.
func parseMemInfo(r io.Reader) (uint64, uint64, error) {
	var total, available uint64

	var haveTotal, haveAvailable bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < minMemInfoFields {
			continue
		}

		var target *uint64

		switch fields[0] {
		case memTotalKey:
			target, haveTotal = &total, true
		case memAvailableKey:
			target, haveAvailable = &available, true
		default:
			continue
		}

		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid %s value %q: %w", fields[0], fields[1], err)
		}

		if len(fields) > minMemInfoFields && fields[2] == memInfoUnitKiB {
			value *= kibibyte
		}

		*target = value
	}

	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}

	if !haveTotal || !haveAvailable || total == 0 {
		return 0, 0, errNoMemInfo
	}

	return total, available, nil
}
