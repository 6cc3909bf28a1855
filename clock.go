package solarsystem

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// jdDayZero is the Julian date of 2000 Jan 0.0 UT, i.e. elapsed day zero.
	jdDayZero = 2451543.5
	// DefaultBurstStep is the factor applied by each burst speed up.
	DefaultBurstStep = 2.0
	// DefaultBurstMax is the highest burst multiplier before wrapping back to 1.
	DefaultBurstMax = 64.0
	// innerPeriodDivisor slows down time when focused on Mercury or Venus.
	innerPeriodDivisor = 15000.0
	// periodDivisor is the period divisor of every other focused body.
	periodDivisor = 100.0
)

// DayNumber returns the day number of the provided Gregorian date since 2000 Jan 0.0 UT.
func DayNumber(year, month, day int) float64 {
	return julian.CalendarGregorianToJD(year, month, float64(day)) - jdDayZero
}

// UT returns the time of day as a fraction of a day.
func UT(hours, minutes, seconds int) float64 {
	return (float64(hours) + float64(minutes)/60 + float64(seconds)/3600) / 24
}

// ElapsedDays returns the elapsed days of the provided time, quantized to the second.
func ElapsedDays(t time.Time) float64 {
	t = t.UTC()
	return DayNumber(t.Year(), int(t.Month()), t.Day()) + UT(t.Hour(), t.Minute(), t.Second())
}

// Clock is the simulation time model. It keeps the calendar time displayed to the user
// and the continuous elapsed days used by the orbit equations.
// The elapsed days are always derived from the calendar, hence are quantized to one second.
type Clock struct {
	t                  time.Time
	elapsed, previous  float64 // days since 2000 Jan 0.0 UT
	delta              float64 // days advanced during the last frame
	frameDelta         float64 // seconds of real time of the last frame
	speedScale         float64
	daysPerFrame       float64
	burst              float64
	burstStep, burstMx float64
	focus              BodyID
	periods            PeriodSource
}

// NewClock returns a new clock starting at the provided time.
func NewClock(start time.Time, periods PeriodSource) *Clock {
	c := &Clock{burst: 1, burstStep: DefaultBurstStep, burstMx: DefaultBurstMax, focus: SolarSystemView, periods: periods}
	c.SetTime(start)
	return c
}

// SetTime moves the clock to the provided time, truncated to the second, without producing any delta.
func (c *Clock) SetTime(t time.Time) {
	c.t = t.UTC().Truncate(time.Second)
	c.elapsed = ElapsedDays(c.t)
	c.previous = c.elapsed
	c.delta = 0
}

// SetSpeedScale sets the days per frame scale, i.e. the user simulation speed.
func (c *Clock) SetSpeedScale(scale float64) {
	c.speedScale = scale
}

// SpeedScale returns the days per frame scale.
func (c *Clock) SpeedScale() float64 {
	return c.speedScale
}

// SetBurstLimits changes the burst step and ceiling.
func (c *Clock) SetBurstLimits(step, max float64) {
	c.burstStep = step
	c.burstMx = max
}

// PeriodFactor returns the time granularity factor of the focused body, derived from
// the same rotation period which drives its roll.
func (c *Clock) PeriodFactor(focus BodyID) float64 {
	switch focus {
	case SolarSystemView:
		return 1
	case Mercury, Venus:
		return c.periodOf(focus) / innerPeriodDivisor
	default:
		return c.periodOf(focus) / periodDivisor
	}
}

func (c *Clock) periodOf(id BodyID) float64 {
	if c.periods == nil {
		return 0
	}
	return c.periods.PeriodOf(id)
}

// Advance advances the clock by one frame of frameDelta seconds while focused on the provided body.
func (c *Clock) Advance(focus BodyID, frameDelta float64) {
	c.focus = focus
	c.frameDelta = frameDelta
	c.daysPerFrame = c.speedScale * c.PeriodFactor(focus)

	// Whole milliseconds, as would an integer millisecond addition.
	ms := int64(frameDelta * 1000 * c.daysPerFrame * c.burst)
	c.t = c.t.Add(time.Duration(ms) * time.Millisecond)

	c.previous = c.elapsed
	c.elapsed = ElapsedDays(c.t)
	c.delta = c.elapsed - c.previous
}

// FramesUntil returns how many frames of frameDelta seconds focused on the provided body
// bring the clock to end, or zero if the clock is already there or does not move.
func (c *Clock) FramesUntil(end time.Time, focus BodyID, frameDelta float64) int {
	step := time.Duration(int64(frameDelta*1000*c.speedScale*c.PeriodFactor(focus)*c.burst)) * time.Millisecond
	if step <= 0 || !c.t.Before(end) {
		return 0
	}
	return int((end.Sub(c.t) + step - 1) / step)
}

// BurstSpeedUp multiplies the burst multiplier by its step, or wraps back to 1 past the ceiling.
func (c *Clock) BurstSpeedUp() {
	if c.burst*c.burstStep <= c.burstMx {
		c.burst *= c.burstStep
	} else {
		c.burst = 1
	}
}

// ResetBurst sets the burst multiplier back to 1.
func (c *Clock) ResetBurst() {
	c.burst = 1
}

// Burst returns the burst multiplier.
func (c *Clock) Burst() float64 {
	return c.burst
}

// Time returns the calendar time.
func (c *Clock) Time() time.Time {
	return c.t
}

// Elapsed returns the elapsed days since 2000 Jan 0.0 UT.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Previous returns the elapsed days before the last frame.
func (c *Clock) Previous() float64 {
	return c.previous
}

// Delta returns the days advanced during the last frame.
func (c *Clock) Delta() float64 {
	return c.delta
}

// DaysPerFrame returns the days per frame computed for the last frame.
func (c *Clock) DaysPerFrame() float64 {
	return c.daysPerFrame
}

// FrameDelta returns the real time duration of the last frame in seconds.
func (c *Clock) FrameDelta() float64 {
	return c.frameDelta
}

// Focus returns the body which determined the time granularity of the last frame.
func (c *Clock) Focus() BodyID {
	return c.focus
}
