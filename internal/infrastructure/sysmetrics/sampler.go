package sysmetrics

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/process"

	"spreadwatch/internal/application"
	"spreadwatch/internal/domain"
)

var _ application.Sampler = (*Sampler)(nil)

// Sampler derives an instantaneous resource snapshot: 1-minute host load
// against the configured core count, and process RSS against the configured
// memory limit. No smoothing, no history.
type Sampler struct {
	PodIP         string
	CPULimit      float64
	RAMLimitBytes uint64
}

func New(podIP string, cpuLimit float64, ramLimit string) (*Sampler, error) {
	bytes, err := ParseMemLimit(ramLimit)
	if err != nil {
		return nil, err
	}
	return &Sampler{PodIP: podIP, CPULimit: cpuLimit, RAMLimitBytes: bytes}, nil
}

// ParseMemLimit parses a human memory limit: "1Gi" and "512Mi" use binary
// multipliers, a bare number is read as megabytes.
func ParseMemLimit(limit string) (uint64, error) {
	s := strings.TrimSpace(limit)
	mult := float64(1 << 20)
	switch {
	case strings.HasSuffix(s, "Gi"):
		mult = 1 << 30
		s = strings.TrimSuffix(s, "Gi")
	case strings.HasSuffix(s, "Mi"):
		s = strings.TrimSuffix(s, "Mi")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid memory limit %q", limit)
	}
	return uint64(n * mult), nil
}

func (s *Sampler) Sample(ctx context.Context) domain.SystemSnapshot {
	snap := domain.SystemSnapshot{IP: s.PodIP}

	if avg, err := load.AvgWithContext(ctx); err == nil && s.CPULimit > 0 {
		snap.CPUPercent = round1(avg.Load1 / s.CPULimit * 100)
	}

	if proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid())); err == nil {
		if mem, err := proc.MemoryInfoWithContext(ctx); err == nil && s.RAMLimitBytes > 0 {
			snap.RAMPercent = round1(float64(mem.RSS) / float64(s.RAMLimitBytes) * 100)
		}
	}

	return snap
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
