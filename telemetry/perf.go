package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase is one stage of the frame task.
type Phase int

const (
	PhaseCommands Phase = iota
	PhaseAutopilot
	PhaseBroadcast
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{"commands", "autopilot", "broadcast", "telemetry"}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// frameSample is the cost of one frame task, in microseconds.
type frameSample struct {
	total  float64
	phases [numPhases]float64
}

// PerfCollector times the two scheduler tasks: the frame task, split into
// phases, and the income task. Samples accumulate until Reset, keeping at
// most the newest capacity frames.
type PerfCollector struct {
	now      func() time.Time
	capacity int

	frames   []frameSample
	next     int // ring write position once frames is full
	incomeUS []float64

	// In-flight frame
	frameStart time.Time
	markStart  time.Time
	phase      Phase
	current    frameSample
	inFrame    bool

	// Wall-clock gap between frame starts
	lastFrameStart time.Time
	gapSum         time.Duration
	gaps           int
}

// NewPerfCollector creates a collector keeping up to capacity frames per window.
func NewPerfCollector(capacity int) *PerfCollector {
	if capacity < 1 {
		capacity = 60
	}
	return &PerfCollector{now: time.Now, capacity: capacity, phase: -1}
}

// BeginFrame starts timing a frame task.
func (p *PerfCollector) BeginFrame() {
	t := p.now()
	if !p.lastFrameStart.IsZero() {
		p.gapSum += t.Sub(p.lastFrameStart)
		p.gaps++
	}
	p.lastFrameStart = t
	p.frameStart = t
	p.current = frameSample{}
	p.phase = -1
	p.inFrame = true
}

// Mark closes the running phase and starts phase ph.
func (p *PerfCollector) Mark(ph Phase) {
	t := p.now()
	p.closePhase(t)
	p.markStart = t
	p.phase = ph
}

// EndFrame closes the frame and records it.
func (p *PerfCollector) EndFrame() {
	if !p.inFrame {
		return
	}
	t := p.now()
	p.closePhase(t)
	p.current.total = micros(t.Sub(p.frameStart))
	p.inFrame = false

	if len(p.frames) < p.capacity {
		p.frames = append(p.frames, p.current)
		return
	}
	p.frames[p.next] = p.current
	p.next = (p.next + 1) % p.capacity
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.phase >= 0 && p.phase < numPhases {
		p.current.phases[p.phase] += micros(t.Sub(p.markStart))
	}
	p.phase = -1
}

// TimeIncome starts timing an income tick; call the result when it is done.
//
//	defer p.TimeIncome()()
func (p *PerfCollector) TimeIncome() func() {
	start := p.now()
	return func() {
		p.incomeUS = append(p.incomeUS, micros(p.now().Sub(start)))
	}
}

// Reset drops all samples so the next Stats covers a fresh window.
// A frame in flight is kept.
func (p *PerfCollector) Reset() {
	p.frames = p.frames[:0]
	p.next = 0
	p.incomeUS = p.incomeUS[:0]
	p.gapSum = 0
	p.gaps = 0
}

// PerfStats summarizes loop cost over one window. Durations are microseconds.
type PerfStats struct {
	Frames      int
	FrameMeanUS float64
	FrameP95US  float64
	FrameMaxUS  float64
	LoopHz      float64 // Frame starts per wall-clock second

	IncomeTicks  int
	IncomeMeanUS float64

	// Share of frame time spent in each phase, in percent
	PhasePct [numPhases]float64
}

// Stats computes the window summary.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats
	if p.gaps > 0 && p.gapSum > 0 {
		s.LoopHz = float64(p.gaps) / p.gapSum.Seconds()
	}
	s.IncomeTicks = len(p.incomeUS)
	if s.IncomeTicks > 0 {
		s.IncomeMeanUS = stat.Mean(p.incomeUS, nil)
	}

	s.Frames = len(p.frames)
	if s.Frames == 0 {
		return s
	}

	totals := make([]float64, s.Frames)
	var phaseSum [numPhases]float64
	var grand float64
	for i, f := range p.frames {
		totals[i] = f.total
		grand += f.total
		for ph, us := range f.phases {
			phaseSum[ph] += us
		}
	}
	sort.Float64s(totals)

	s.FrameMeanUS = stat.Mean(totals, nil)
	s.FrameP95US = stat.Quantile(0.95, stat.Empirical, totals, nil)
	s.FrameMaxUS = totals[len(totals)-1]
	if grand > 0 {
		for ph := range phaseSum {
			s.PhasePct[ph] = phaseSum[ph] / grand * 100
		}
	}
	return s
}

// LogStats logs the window summary.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Float64("frame_mean_us", s.FrameMeanUS),
		slog.Float64("frame_p95_us", s.FrameP95US),
		slog.Float64("frame_max_us", s.FrameMaxUS),
		slog.Int("income_ticks", s.IncomeTicks),
		slog.Float64("income_mean_us", s.IncomeMeanUS),
	}
	if s.LoopHz > 0 {
		attrs = append(attrs, slog.Float64("loop_hz", s.LoopHz))
	}
	for ph := Phase(0); ph < numPhases; ph++ {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct[ph]))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	SimTime      float64 `csv:"sim_time"`
	Frames       int     `csv:"frames"`
	FrameMeanUS  float64 `csv:"frame_mean_us"`
	FrameP95US   float64 `csv:"frame_p95_us"`
	FrameMaxUS   float64 `csv:"frame_max_us"`
	LoopHz       float64 `csv:"loop_hz"`
	IncomeTicks  int     `csv:"income_ticks"`
	IncomeMeanUS float64 `csv:"income_mean_us"`
	CommandsPct  float64 `csv:"commands_pct"`
	AutopilotPct float64 `csv:"autopilot_pct"`
	BroadcastPct float64 `csv:"broadcast_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(simTime float64) PerfStatsCSV {
	return PerfStatsCSV{
		SimTime:      simTime,
		Frames:       s.Frames,
		FrameMeanUS:  s.FrameMeanUS,
		FrameP95US:   s.FrameP95US,
		FrameMaxUS:   s.FrameMaxUS,
		LoopHz:       s.LoopHz,
		IncomeTicks:  s.IncomeTicks,
		IncomeMeanUS: s.IncomeMeanUS,
		CommandsPct:  s.PhasePct[PhaseCommands],
		AutopilotPct: s.PhasePct[PhaseAutopilot],
		BroadcastPct: s.PhasePct[PhaseBroadcast],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
