// Package catalog stores the descriptive information of the bodies of the solar system
// (mass, gravity, temperature...) in a SQLite database.
package catalog

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when no body matches the request.
var ErrNotFound = errors.New("body not found")

// Body types.
const (
	TypeStar        = "Star"
	TypePlanet      = "Planet"
	TypeDwarfPlanet = "Dwarf planet"
	TypeSatellite   = "Satellite"
)

// Body is the information of one body.
type Body struct {
	ID             uint    `gorm:"primaryKey"`
	Name           string  `gorm:"uniqueIndex;not null"`
	Type           string  `gorm:"index"`
	OrbitalSpeed   float64 // km/s
	Mass           float64 // kg
	MeanRadius     float64 // km
	Temperature    int     // K
	Gravity        float64 // m/s²
	Volume         float64 // km³
	SiderealPeriod float64 // days
	OrbitalPeriod  float64 // days
	Description    string
}

// TableName implements gorm's Tabler interface.
func (Body) TableName() string {
	return "solar_system"
}

// Catalog is a body information database.
type Catalog struct {
	db     *gorm.DB
	logger kitlog.Logger
}

// Open opens (or creates) the catalog at path; an empty path is an in-memory catalog.
// The schema is migrated on open.
func Open(path string, klog kitlog.Logger) (*Catalog, error) {
	if klog == nil {
		klog = kitlog.NewNopLogger()
	}
	klog = kitlog.With(klog, "subsys", "catalog")
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	// An in-memory database only lives as long as its connection.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&Body{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	level.Info(klog).Log("path", dsn, "status", "open")
	return &Catalog{db, klog}, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsOpen returns whether the database answers.
func (c *Catalog) IsOpen() bool {
	sqlDB, err := c.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// Seed inserts the default bodies if the catalog is empty.
func (c *Catalog) Seed() error {
	count, err := c.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	bodies := DefaultBodies()
	if err := c.db.Create(&bodies).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	level.Info(c.logger).Log("seeded", len(bodies))
	return nil
}

// Add inserts or updates a body.
func (c *Catalog) Add(b Body) error {
	var existing Body
	err := c.db.Where("name = ?", b.Name).First(&existing).Error
	switch {
	case err == nil:
		b.ID = existing.ID
		return c.db.Save(&b).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.db.Create(&b).Error
	default:
		return err
	}
}

// Count returns the number of bodies.
func (c *Catalog) Count() (int64, error) {
	var count int64
	err := c.db.Model(&Body{}).Count(&count).Error
	return count, err
}

// Info returns the body with the provided name (case insensitive).
func (c *Catalog) Info(name string) (Body, error) {
	var b Body
	err := c.db.Where("name LIKE ?", name).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Body{}, fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	return b, err
}

// AllObjects returns the names of all bodies.
func (c *Catalog) AllObjects() ([]string, error) {
	var names []string
	err := c.db.Model(&Body{}).Order("id").Pluck("name", &names).Error
	return names, err
}

// AllPlanetNames returns the names of the planets.
func (c *Catalog) AllPlanetNames() ([]string, error) {
	var names []string
	err := c.db.Model(&Body{}).Where("type LIKE ?", TypePlanet).Order("id").Pluck("name", &names).Error
	return names, err
}

// ColumnNames returns the column names of the catalog table.
func (c *Catalog) ColumnNames() ([]string, error) {
	cols, err := c.db.Migrator().ColumnTypes(&Body{})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name()
	}
	return names, nil
}
