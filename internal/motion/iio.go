package motion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultIIORoot is where Linux exposes industrial-I/O devices.
const DefaultIIORoot = "/sys/bus/iio/devices"

// IIO reads a Linux industrial-I/O accelerometer through sysfs. Channel
// values are (raw+offset)*scale in m/s².
type IIO struct {
	Dir string
}

var _ Reader = IIO{}

// FindIIO returns the first device under root exposing all three accel
// channels, or ErrUnavailable.
func FindIIO(root string) (IIO, error) {
	matches, err := filepath.Glob(filepath.Join(root, "iio:device*", "in_accel_x_raw"))
	if err != nil {
		return IIO{}, err
	}
	sort.Strings(matches)
	for _, m := range matches {
		dev := IIO{Dir: filepath.Dir(m)}
		if dev.Available() {
			return dev, nil
		}
	}
	return IIO{}, ErrUnavailable
}

func (d IIO) Available() bool {
	if d.Dir == "" {
		return false
	}
	for _, axis := range []string{"x", "y", "z"} {
		if _, err := os.Stat(filepath.Join(d.Dir, "in_accel_"+axis+"_raw")); err != nil {
			return false
		}
	}
	return true
}

func (d IIO) Read() (Sample, error) {
	x, err := d.axis("x")
	if err != nil {
		return Sample{}, err
	}
	y, err := d.axis("y")
	if err != nil {
		return Sample{}, err
	}
	z, err := d.axis("z")
	if err != nil {
		return Sample{}, err
	}
	return Sample{X: x, Y: y, Z: z}, nil
}

func (d IIO) axis(name string) (float64, error) {
	raw, err := d.value("in_accel_" + name + "_raw")
	if err != nil {
		return 0, err
	}
	offset, err := d.optional(0, "in_accel_"+name+"_offset", "in_accel_offset")
	if err != nil {
		return 0, err
	}
	scale, err := d.optional(1, "in_accel_"+name+"_scale", "in_accel_scale")
	if err != nil {
		return 0, err
	}
	return (raw + offset) * scale / StandardGravity, nil
}

// optional reads the first existing attribute of names, or returns def.
func (d IIO) optional(def float64, names ...string) (float64, error) {
	for _, n := range names {
		v, err := d.value(n)
		if err == nil {
			return v, nil
		}
		if !os.IsNotExist(err) {
			return 0, err
		}
	}
	return def, nil
}

func (d IIO) value(name string) (float64, error) {
	b, err := os.ReadFile(filepath.Join(d.Dir, name))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return v, nil
}
