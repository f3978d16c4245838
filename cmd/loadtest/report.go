package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
)

// scenarioMethod — псевдометод, под которым копится статистика сценариев целиком.
const scenarioMethod = "scenario"

type latencySummary struct {
	Min float64 `json:"min"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"ok"`
	Conflicts int64            `json:"conflicts"`
	Failed    int64            `json:"errors"`
	ErrorRate float64          `json:"error_share"`
	Codes     map[string]int64 `json:"by_code"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	Mode              string                  `json:"mode"`
	StartedAt         time.Time               `json:"started_at"`
	DurationSeconds   float64                 `json:"elapsed_s"`
	TotalScenarios    int64                   `json:"scenarios"`
	SuccessScenarios  int64                   `json:"scenarios_ok"`
	ConflictScenarios int64                   `json:"scenarios_conflict"`
	FailedScenarios   int64                   `json:"scenarios_failed"`
	ErrorRate         float64                 `json:"error_share"`
	RPS               float64                 `json:"scenarios_per_second"`
	ScenarioLatencyMs latencySummary          `json:"scenario_latency_ms"`
	Methods           map[string]methodReport `json:"per_method"`
	Stock             *stockReport            `json:"stock,omitempty"`
}

// stockReport сверяет остаток артикула с числом успешно оформленных заказов.
type stockReport struct {
	ArticleNo    string `json:"article_no"`
	Initial      int32  `json:"initial"`
	Final        int32  `json:"final"`
	OrderedUnits int64  `json:"ordered_units"`
	Consistent   bool   `json:"consistent"`
	Oversold     bool   `json:"oversold"`
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeConflict
	outcomeFailed
)

// classify разделяет коды ответа: Aborted и FailedPrecondition ожидаемы при
// конкурентных изменениях и исчерпании остатка, остальные ошибки считаются сбоем.
func classify(code codes.Code) outcome {
	switch code {
	case codes.OK:
		return outcomeSuccess
	case codes.Aborted, codes.FailedPrecondition:
		return outcomeConflict
	default:
		return outcomeFailed
	}
}

// tally копит исходы и задержки одного метода.
type tally struct {
	outcomes [3]int64
	byCode   map[codes.Code]int64
	samples  []time.Duration
}

func (t *tally) add(latency time.Duration, code codes.Code) {
	if t.byCode == nil {
		t.byCode = make(map[codes.Code]int64)
	}
	t.outcomes[classify(code)]++
	t.byCode[code]++
	t.samples = append(t.samples, latency)
}

func (t *tally) calls() int64 {
	return t.outcomes[outcomeSuccess] + t.outcomes[outcomeConflict] + t.outcomes[outcomeFailed]
}

func (t *tally) millis() []float64 {
	out := make([]float64, len(t.samples))
	for i, d := range t.samples {
		out[i] = float64(d) / float64(time.Millisecond)
	}
	return out
}

func (t *tally) snapshot() methodReport {
	named := make(map[string]int64, len(t.byCode))
	for code, n := range t.byCode {
		named[code.String()] = n
	}
	return methodReport{
		Calls:     t.calls(),
		Success:   t.outcomes[outcomeSuccess],
		Conflicts: t.outcomes[outcomeConflict],
		Failed:    t.outcomes[outcomeFailed],
		ErrorRate: ratio(t.outcomes[outcomeFailed], t.calls()),
		Codes:     named,
		LatencyMs: buildLatencySummary(t.millis()),
	}
}

// collector безопасен для одновременной записи из воркеров прогона.
type collector struct {
	mu      sync.Mutex
	tallies map[string]*tally
}

func newCollector() *collector {
	return &collector{tallies: map[string]*tally{}}
}

func (c *collector) record(method string, latency time.Duration, code codes.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.tallies[method]
	if t == nil {
		t = &tally{}
		c.tallies[method] = t
	}
	t.add(latency, code)
}

func (c *collector) successes(method string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t := c.tallies[method]; t != nil {
		return t.outcomes[outcomeSuccess]
	}
	return 0
}

func (c *collector) buildReport(mode loadMode, startedAt time.Time, elapsed time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := report{
		Mode:            string(mode),
		StartedAt:       startedAt.UTC(),
		DurationSeconds: elapsed.Seconds(),
		Methods:         map[string]methodReport{},
	}
	for method, t := range c.tallies {
		out.Methods[method] = t.snapshot()
	}

	scenarios, ok := out.Methods[scenarioMethod]
	if !ok {
		return out
	}
	out.TotalScenarios = scenarios.Calls
	out.SuccessScenarios = scenarios.Success
	out.ConflictScenarios = scenarios.Conflicts
	out.FailedScenarios = scenarios.Failed
	out.ErrorRate = scenarios.ErrorRate
	out.ScenarioLatencyMs = scenarios.LatencyMs
	if elapsed > 0 {
		out.RPS = float64(scenarios.Calls) / elapsed.Seconds()
	}
	return out
}

// writeJSONReport пишет отчёт в файл внутри текущего каталога.
func writeJSONReport(path string, result report) error {
	target := filepath.Clean(path)
	switch {
	case target == "." || target == string(filepath.Separator):
		return errors.New("report path is a directory, expected a file")
	case filepath.IsAbs(target):
		// абсолютный путь задан явно, ограничение на каталог не действует
	case target == ".." || strings.HasPrefix(target, ".."+string(filepath.Separator)):
		return fmt.Errorf("report path escapes working directory: %s", path)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	// #nosec G306 -- отчёт нагрузочного прогона не содержит секретов.
	if err := os.WriteFile(target, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", target, err)
	}
	return nil
}

func printReport(out io.Writer, result report, target string) {
	lat := result.ScenarioLatencyMs
	fmt.Fprintf(out, "Load test summary\nmode=%s run=%s total=%d success=%d conflicts=%d failed=%d error_rate=%.4f\n",
		result.Mode, target, result.TotalScenarios, result.SuccessScenarios,
		result.ConflictScenarios, result.FailedScenarios, result.ErrorRate)
	fmt.Fprintf(out, "duration=%.2fs rps=%.2f\n", result.DurationSeconds, result.RPS)
	fmt.Fprintf(out, "scenario latency ms: min=%.2f avg=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		lat.Min, lat.Avg, lat.P50, lat.P95, lat.P99, lat.Max)

	for _, method := range slices.Sorted(maps.Keys(result.Methods)) {
		if method == scenarioMethod {
			continue
		}
		m := result.Methods[method]
		fmt.Fprintf(out, "%s: calls=%d success=%d conflicts=%d failed=%d p95=%.2fms codes=%v\n",
			method, m.Calls, m.Success, m.Conflicts, m.Failed, m.LatencyMs.P95, m.Codes)
	}

	if s := result.Stock; s != nil {
		fmt.Fprintf(out, "stock %s: initial=%d final=%d ordered=%d consistent=%t oversold=%t\n",
			s.ArticleNo, s.Initial, s.Final, s.OrderedUnits, s.Consistent, s.Oversold)
	}
}

func buildLatencySummary(values []float64) latencySummary {
	if len(values) == 0 {
		return latencySummary{}
	}
	sorted := slices.Sorted(slices.Values(values))

	total := 0.0
	for _, v := range sorted {
		total += v
	}
	return latencySummary{
		Min: sorted[0],
		P50: percentile(sorted, 50),
		P95: percentile(sorted, 95),
		P99: percentile(sorted, 99),
		Max: sorted[len(sorted)-1],
		Avg: total / float64(len(sorted)),
	}
}

// percentile интерполирует линейно между соседними рангами отсортированной выборки.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) < 2 {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[0]
	}
	pos := p / 100 * float64(len(sorted)-1)
	i := int(pos)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - math.Trunc(pos)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

func ratio(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}
