// Package cityfile reads and writes whitespace-separated coordinate files.
//
// Each data line carries a longitude and a latitude in degrees, optionally
// followed by a free-form label:
//
//	#longitude   latitude    City
//	13.40	52.52	Berlin
//	11.58	48.14	Munich
//
// Blank lines and lines starting with '#' are ignored; lines whose first two
// fields are not numbers are skipped and counted. Files ending in ".gz",
// ".zst" or ".lz4" are transparently (de)compressed.
package cityfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/geotour/geo"
)

// Header is the comment line written at the top of every route file.
const Header = "#longitude   latitude    City"

// ErrNoCities is returned by Read when a file holds no usable line.
var ErrNoCities = errors.New("cityfile: no cities")

// City is a point with its optional label.
type City struct {
	geo.Point
	Name string
}

// Points strips the labels.
func Points(cities []City) []geo.Point {
	out := make([]geo.Point, len(cities))
	for i := range cities {
		out[i] = cities[i].Point
	}

	return out
}

// Reorder returns cities in tour order.
func Reorder(cities []City, tour []int) []City {
	out := make([]City, len(tour))
	for i, idx := range tour {
		out[i] = cities[idx]
	}

	return out
}

// Decode parses cities from r. skipped counts malformed data lines.
func Decode(r io.Reader) (cities []City, skipped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		c, ok := parseLine(line)
		if !ok {
			skipped++
			continue
		}
		cities = append(cities, c)
	}
	if err = sc.Err(); err != nil {
		return nil, skipped, fmt.Errorf("cityfile: scan: %w", err)
	}

	return cities, skipped, nil
}

func parseLine(line string) (City, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return City{}, false
	}
	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return City{}, false
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return City{}, false
	}

	return City{
		Point: geo.Point{Lon: lon, Lat: lat},
		Name:  strings.Join(fields[2:], " "),
	}, true
}

// Encode writes the header followed by one "lon<TAB>lat<TAB>name" line per
// city. Coordinates use the shortest representation that parses back to the
// same float64.
func Encode(w io.Writer, cities []City) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}

	buf := make([]byte, 0, 64)
	for _, c := range cities {
		buf = strconv.AppendFloat(buf[:0], c.Lon, 'f', -1, 64)
		buf = append(buf, '\t')
		buf = strconv.AppendFloat(buf, c.Lat, 'f', -1, 64)
		buf = append(buf, '\t')
		buf = append(buf, c.Name...)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Read loads the cities stored at path.
//
// Errors: ErrNoCities when nothing usable was found; I/O and decompression
// errors are wrapped with the path.
func Read(path string) (cities []City, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, closeFn, err := decompressor(path, f)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer closeFn()

	cities, skipped, err = Decode(r)
	if err != nil {
		return nil, skipped, fmt.Errorf("read %s: %w", path, err)
	}
	if len(cities) == 0 {
		return nil, skipped, fmt.Errorf("read %s: %w", path, ErrNoCities)
	}

	return cities, skipped, nil
}

// Write stores cities at path, replacing any existing file.
func Write(path string, cities []City) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w, closeFn, err := compressor(path, f)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = Encode(w, cities); err != nil {
		_ = closeFn()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = closeFn(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func decompressor(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case ".lz4":
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

func compressor(path string, w io.Writer) (io.Writer, func() error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zw := gzip.NewWriter(w)
		return zw, zw.Close, nil
	case ".zst":
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	case ".lz4":
		zw := lz4.NewWriter(w)
		return zw, zw.Close, nil
	default:
		return w, func() error { return nil }, nil
	}
}
