package solarsystem

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	e := NewEngine(testConfig(), NewMemoryScene(Sun, Earth), WithMetrics(m), WithCamera(&StaticCamera{}))
	e.ChangeScale(3, false)
	for i := 0; i < 4; i++ {
		e.Step(Earth, 1)
	}
	if v := testutil.ToFloat64(m.frames); v != 4 {
		t.Fatalf("frames=%f", v)
	}
	if v := testutil.ToFloat64(m.elapsedDays); v != e.Clock().Elapsed() {
		t.Fatalf("elapsed=%f", v)
	}
	if v := testutil.ToFloat64(m.daysPerFrame); v != e.Clock().DaysPerFrame() {
		t.Fatalf("days per frame=%f", v)
	}
	if v := testutil.ToFloat64(m.scale); v != 3 {
		t.Fatalf("scale=%f", v)
	}
	if v := testutil.ToFloat64(m.burst); v != 1 {
		t.Fatalf("burst=%f", v)
	}

	e.UpdateSolarView(Mars)
	e.ViewPositionOfObject(Mars)
	if v := testutil.ToFloat64(m.missing.WithLabelValues("Mars")); v != 2 {
		t.Fatalf("missing Mars=%f", v)
	}
	if n, err := testutil.GatherAndCount(reg); err != nil || n != 6 {
		t.Fatalf("gathered %d metrics (%v)", n, err)
	}
}

func TestMetricsMissingOnlyAbsentBodies(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	e := NewEngine(testConfig(), NewMemoryScene(Sun, Earth), WithMetrics(m))
	e.Step(SolarSystemView, 1)
	if v := e.ViewPositionOfObject(Earth); v != (Vec3{}) {
		t.Fatalf("expected the origin without a camera, got %+v", v)
	}
	if v := testutil.ToFloat64(m.missing.WithLabelValues("Earth")); v != 0 {
		t.Fatalf("Earth is in the scene but counted missing %f times", v)
	}
	e.ViewPositionOfObject(Mars)
	if v := testutil.ToFloat64(m.missing.WithLabelValues("Mars")); v != 1 {
		t.Fatalf("missing Mars=%f", v)
	}
}
