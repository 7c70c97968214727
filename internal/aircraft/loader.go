package aircraft

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flightdyn-ng/internal/aero"
)

// fileSpec mirrors one aircraft JSON file. Field names follow the on-disk
// format, which predates this program.
type fileSpec struct {
	Mass         *float64 `json:"mass"`
	S            *float64 `json:"S"`
	CLAlpha      *float64 `json:"CL_alpha"`
	CD0          *float64 `json:"CD0"`
	K            *float64 `json:"k"`
	MaxThrust    *float64 `json:"maxThrust"`
	AeroDataFile string   `json:"aeroDataFile"`
}

// Catalog holds the loadable aircraft, indexed by name. Aerodynamic tables
// are cached by file path so presets referencing the same CSV share one
// table instance.
type Catalog struct {
	byName map[string]*Aircraft
	names  []string
	tables map[string]*aero.Table
	log    *slog.Logger
}

// NewCatalog returns an empty catalog. The logger may be nil.
func NewCatalog(log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{
		byName: make(map[string]*Aircraft),
		tables: make(map[string]*aero.Table),
		log:    log,
	}
}

// LoadFile loads one aircraft JSON file into the catalog under the file's
// base name. Descriptor problems are ErrConfig and fatal to this file only.
// A broken aeroDataFile is not fatal: the aircraft falls back to its legacy
// coefficients.
func (c *Catalog) LoadFile(path string) (*Aircraft, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	var spec fileSpec
	if err := json.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	for field, v := range map[string]*float64{
		"mass": spec.Mass, "S": spec.S, "CL_alpha": spec.CLAlpha,
		"CD0": spec.CD0, "k": spec.K, "maxThrust": spec.MaxThrust,
	} {
		if v == nil {
			return nil, fmt.Errorf("%w: %s: missing field %q", ErrConfig, path, field)
		}
	}

	var table *aero.Table
	if spec.AeroDataFile != "" {
		table = c.loadTable(filepath.Join(filepath.Dir(path), spec.AeroDataFile))
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ac, err := New(name, *spec.Mass, *spec.S, *spec.CLAlpha, *spec.CD0, *spec.K, *spec.MaxThrust, table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if _, exists := c.byName[name]; !exists {
		c.names = append(c.names, name)
		sort.Strings(c.names)
	}
	c.byName[name] = ac
	return ac, nil
}

// loadTable fetches a sample table through the cache. A load failure is
// logged and yields nil, which selects the legacy model downstream.
func (c *Catalog) loadTable(path string) *aero.Table {
	if t, ok := c.tables[path]; ok {
		return t
	}
	t, err := aero.LoadCSV(path)
	if err != nil {
		c.log.Warn("aero table load failed, using legacy coefficients", "path", path, "err", err)
		return nil
	}
	c.tables[path] = t
	return t
}

// LoadDir loads every *.json file in dir. Files that fail to load are
// logged and skipped; the rest of the catalog still loads. The returned
// error is non-nil only when the directory itself cannot be read.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read aircraft dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if _, err := c.LoadFile(path); err != nil {
			c.log.Warn("aircraft config rejected", "path", path, "err", err)
		}
	}
	return nil
}

// Get returns the aircraft with the given name.
func (c *Catalog) Get(name string) (*Aircraft, bool) {
	ac, ok := c.byName[name]
	return ac, ok
}

// Names returns the loaded aircraft names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of loaded aircraft.
func (c *Catalog) Len() int {
	return len(c.byName)
}
