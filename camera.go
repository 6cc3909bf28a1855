package solarsystem

// Camera is the view of the scene.
type Camera interface {
	Position() Vec3
	SetViewCenter(center Vec3)
}

// CameraController is the zoom control of the camera. The core only pushes values to it,
// it never reads anything but its defaults.
type CameraController interface {
	SetZoomLimit(limit float64)
	SetZoomSpeed(speed float64)
	SetDefaultZoomLimit()
	SetDefaultZoomSpeed()
	DefaultZoomLimit() float64
	DefaultZoomSpeed() float64
}

// Skybox follows the camera so that it always appears infinitely far.
type Skybox interface {
	SetCameraPosition(p Vec3)
}

// StaticCamera is a Camera which only stores its state, for headless runs.
type StaticCamera struct {
	Pos, ViewCenter Vec3
}

// Position implements the Camera interface.
func (c *StaticCamera) Position() Vec3 {
	return c.Pos
}

// SetViewCenter implements the Camera interface.
func (c *StaticCamera) SetViewCenter(center Vec3) {
	c.ViewCenter = center
}

// ZoomState is a CameraController which only stores its state, for headless runs.
type ZoomState struct {
	Limit, Speed               float64
	DefaultLimit, DefaultSpeed float64
}

// NewZoomState returns a zoom state at its defaults.
func NewZoomState(defaultLimit, defaultSpeed float64) *ZoomState {
	return &ZoomState{defaultLimit, defaultSpeed, defaultLimit, defaultSpeed}
}

// SetZoomLimit implements the CameraController interface.
func (z *ZoomState) SetZoomLimit(limit float64) { z.Limit = limit }

// SetZoomSpeed implements the CameraController interface.
func (z *ZoomState) SetZoomSpeed(speed float64) { z.Speed = speed }

// SetDefaultZoomLimit implements the CameraController interface.
func (z *ZoomState) SetDefaultZoomLimit() { z.Limit = z.DefaultLimit }

// SetDefaultZoomSpeed implements the CameraController interface.
func (z *ZoomState) SetDefaultZoomSpeed() { z.Speed = z.DefaultSpeed }

// DefaultZoomLimit implements the CameraController interface.
func (z *ZoomState) DefaultZoomLimit() float64 { return z.DefaultLimit }

// DefaultZoomSpeed implements the CameraController interface.
func (z *ZoomState) DefaultZoomSpeed() float64 { return z.DefaultSpeed }
