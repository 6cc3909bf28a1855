package solarsystem

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/soniakeys/meeus/v3/julian"
)

// AU is one astronomical unit in kilometers.
const AU = 1.49597870700e8

// CgCatalog definition.
type CgCatalog struct {
	Version string     `json:"version"`
	Name    string     `json:"name"`
	Items   []*CgItems `json:"items"`
	Require []string   `json:"require,omitempty"`
}

func (c *CgCatalog) String() string {
	return c.Name + "(" + c.Version + ")"
}

// CgItems definition.
type CgItems struct {
	Class           string            `json:"class"`
	Name            string            `json:"name"`
	StartTime       string            `json:"startTime"`
	EndTime         string            `json:"endTime"`
	Center          string            `json:"center"`
	TrajectoryFrame string            `json:"trajectoryFrame"`
	Trajectory      *CgTrajectory     `json:"trajectory,omitempty"`
	Label           *CgLabel          `json:"label,omitempty"`
	TrajectoryPlot  *CgTrajectoryPlot `json:"trajectoryPlot,omitempty"`
}

// CgTrajectory definition.
type CgTrajectory struct {
	Type   string `json:"type,omitempty"`
	Source string `json:"source,omitempty"`
}

// Validate validates a CgTrajectory.
func (t *CgTrajectory) Validate() error {
	if t.Type != "InterpolatedStates" || !strings.HasSuffix(t.Source, "xyzv") {
		return errors.New("only InterpolatedStates are currently supported in Cosmographia trajectory types")
	}
	return nil
}

func (t *CgTrajectory) String() string {
	return t.Source + " as " + t.Type
}

// CgLabel definition.
type CgLabel struct {
	Color    []float64 `json:"color,omitempty"`
	FadeSize int       `json:"fadeSize,omitempty"`
	ShowText bool      `json:"showText,omitempty"`
}

// CgTrajectoryPlot definition.
type CgTrajectoryPlot struct {
	Color       []float64 `json:"color,omitempty"`
	LineWidth   int       `json:"lineWidth,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Lead        string    `json:"lead,omitempty"`
	Fade        int       `json:"fade,omitempty"`
	SampleCount int       `json:"sampleCount,omitempty"`
}

// CgInterpolatedState is one record of a Cosmographia xyzv file.
type CgInterpolatedState struct {
	JD       float64
	Position []float64
	Velocity []float64
}

// FromText initializes from text.
// The `record` parameter must be an array of seven items.
func (i *CgInterpolatedState) FromText(record []string) error {
	if len(record) != 7 {
		return fmt.Errorf("expected 7 fields, got %d", len(record))
	}
	vals := make([]float64, 7)
	for j, field := range record {
		val, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return err
		}
		vals[j] = val
	}
	i.JD = vals[0]
	i.Position = vals[1:4]
	i.Velocity = vals[4:7]
	return nil
}

// ToText converts to text for written output.
func (i *CgInterpolatedState) ToText() string {
	return fmt.Sprintf("%f %f %f %f %f %f %f", i.JD, i.Position[0], i.Position[1], i.Position[2], i.Velocity[0], i.Velocity[1], i.Velocity[2])
}

// ParseInterpolatedStates takes a string and converts that into a CgInterpolatedState.
func ParseInterpolatedStates(s string) ([]*CgInterpolatedState, error) {
	var states = []*CgInterpolatedState{}
	r := csv.NewReader(strings.NewReader(s))
	r.Comma = ' '
	r.Comment = '#'
	for {
		record, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		state := CgInterpolatedState{}
		if err := state.FromText(record); err != nil {
			return nil, err
		}
		states = append(states, &state)
	}
	return states, nil
}

// ExportConfig configures the exporting of the frames.
type ExportConfig struct {
	Filename  string
	OutputDir string
	AUScale   float64 // scene units per AU, to convert positions back to km
	Cosmo     bool
	AsCSV     bool
	Timestamp bool
	Logger    kitlog.Logger
	// Elements of the bodies listed in the catalog, DefaultElements when nil.
	Elements  map[BodyID]OrbitalElements
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.Cosmo && !c.AsCSV
}

func (c ExportConfig) path(prefix, body, ext string) string {
	name := c.Filename
	if body != "" {
		name += "-" + body
	}
	if c.Timestamp {
		t := time.Now()
		name = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", name, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	return filepath.Join(c.OutputDir, fmt.Sprintf("%s-%s.%s", prefix, name, ext))
}

// eclipticKm converts a scene position to ecliptic coordinates in km.
func (c ExportConfig) eclipticKm(b BodyState) []float64 {
	auScale := c.AUScale
	if auScale == 0 {
		auScale = DefaultAUScale
	}
	k := AU / auScale
	return []float64{b.X * k, -b.Z * k, b.Y * k}
}

// createInterpolatedFile returns a file which requires a defer close statement!
func createInterpolatedFile(path string, stateDT time.Time) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	// Header
	_, err = f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <jd> <x> <y> <z> <vel x> <vel y> <vel z>
#   Time is a UTC Julian date
#   Position in km
#   Velocity in km/sec (not computed)
#   Simulation time start (UTC): %s`, time.Now().UTC(), stateDT.UTC()))
	return f, err
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(path string, stateDT time.Time) (*os.File, *csv.Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if _, err := f.WriteString(fmt.Sprintf("# Simulation time start (UTC): %s\n", stateDT.UTC())); err != nil {
		f.Close()
		return nil, nil, err
	}
	w := csv.NewWriter(f)
	err = w.Write([]string{"time", "elapsed", "body", "x", "y", "z", "roll", "tilt", "r"})
	return f, w, err
}

// StreamFrames writes the frames of the channel until it is closed.
// Cosmographia output is one xyzv file per body plus a catalog; CSV output is a single file.
func StreamFrames(conf ExportConfig, frames <-chan FrameState) (err error) {
	logger := conf.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	logger = kitlog.With(logger, "subsys", "export")

	var first, last *FrameState
	xyzv := map[string]*os.File{}
	var fCSV *os.File
	var wCSV *csv.Writer
	defer func() {
		for _, f := range xyzv {
			if last != nil {
				f.WriteString(fmt.Sprintf("\n# Simulation time end (UTC): %s\n", last.DT.UTC()))
			}
			f.Close()
		}
		if wCSV != nil {
			wCSV.Flush()
			if ferr := wCSV.Error(); ferr != nil && err == nil {
				err = ferr
			}
		}
		if fCSV != nil {
			fCSV.Close()
		}
	}()

	for frame := range frames {
		frame := frame
		if first == nil {
			first = &frame
			if conf.AsCSV {
				if fCSV, wCSV, err = createCSVFile(conf.path("frames", "", "csv"), frame.DT); err != nil {
					return err
				}
			}
		}
		last = &frame
		for _, b := range frame.Bodies {
			if conf.Cosmo {
				f, ok := xyzv[b.Name]
				if !ok {
					if f, err = createInterpolatedFile(conf.path("prop", b.Name, "xyzv"), frame.DT); err != nil {
						return err
					}
					xyzv[b.Name] = f
				}
				asTxt := CgInterpolatedState{JD: julian.TimeToJD(frame.DT), Position: conf.eclipticKm(b), Velocity: []float64{0, 0, 0}}
				if _, err = f.WriteString("\n" + asTxt.ToText()); err != nil {
					return err
				}
			}
			if conf.AsCSV {
				rec := []string{
					frame.DT.UTC().Format("2006-01-02 15:04:05"),
					strconv.FormatFloat(frame.Elapsed, 'f', 6, 64),
					b.Name,
					strconv.FormatFloat(b.X, 'f', 3, 64),
					strconv.FormatFloat(b.Y, 'f', 3, 64),
					strconv.FormatFloat(b.Z, 'f', 3, 64),
					strconv.FormatFloat(b.Roll, 'f', 3, 64),
					strconv.FormatFloat(b.Tilt, 'f', 3, 64),
					strconv.FormatFloat(b.R, 'f', 3, 64),
				}
				if err = wCSV.Write(rec); err != nil {
					return err
				}
			}
		}
	}

	if conf.Cosmo && first != nil {
		return writeCatalog(conf, xyzv, *first, *last, logger)
	}
	return nil
}

func writeCatalog(conf ExportConfig, xyzv map[string]*os.File, first, last FrameState, logger kitlog.Logger) error {
	color := []float64{0.6, 1, 1}
	end := last.DT.Add(24 * time.Hour)
	c := CgCatalog{Version: "1.0", Name: conf.Filename}
	elements := conf.Elements
	if elements == nil {
		elements = DefaultElements()
	}
	reg := NewRegistry(elements, nil)
	for _, b := range first.Bodies {
		if _, ok := xyzv[b.Name]; !ok || b.ID == Sun {
			continue
		}
		if _, err := reg.ElementsOf(b.ID); errors.Is(err, ErrUnknownElements) {
			// Rings and clouds follow their planet.
			continue
		}
		traj := CgTrajectory{Type: "InterpolatedStates", Source: filepath.Base(xyzv[b.Name].Name())}
		label := CgLabel{Color: color, FadeSize: 1000000, ShowText: true}
		plot := CgTrajectoryPlot{Color: color, LineWidth: 1, Duration: fmt.Sprintf("%d d", int(end.Sub(first.DT).Hours()/24+1)), Lead: "0 d", SampleCount: 10}
		c.Items = append(c.Items, &CgItems{Class: "planet", Name: b.Name, StartTime: first.DT.UTC().String(), EndTime: end.UTC().String(), Center: "Sun", TrajectoryFrame: "EclipticJ2000", Trajectory: &traj, Label: &label, TrajectoryPlot: &plot})
	}
	fc, err := os.Create(filepath.Join(conf.OutputDir, fmt.Sprintf("catalog-%s.json", conf.Filename)))
	if err != nil {
		return err
	}
	defer fc.Close()
	level.Info(logger).Log("catalog", fc.Name(), "items", len(c.Items))
	return json.NewEncoder(fc).Encode(c)
}
