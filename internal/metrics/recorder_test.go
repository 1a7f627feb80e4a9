package metrics

import "time"

// testRecorder counts calls; shared by tests in this package.
type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	runOutcomes    map[ResultLabel]int
	entries        int
	packages       int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{stageDurations: map[string]int{}, stageResults: map[string]map[ResultLabel]int{}, runOutcomes: map[ResultLabel]int{}}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.stageDurations[stage]++
}
func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) ObserveRunDuration(time.Duration)  {}
func (t *testRecorder) IncRunOutcome(result ResultLabel) { t.runOutcomes[result]++ }
func (t *testRecorder) SetIndexSize(entries, packages int) {
	t.entries, t.packages = entries, packages
}

var (
	_ Recorder = (*testRecorder)(nil)
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)
