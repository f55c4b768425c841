// Package datastore owns the on-disk layout of the mirrored data:
// lines/<Key>.json, geometry/<id>.json and countries.json under one data directory.
package datastore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mirinda123/MetroDrifter/pkg/metro"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const fileExtension = ".json"

type Store struct {
	LinesDir      string
	GeometryDir   string
	CountriesFile string
}

func New(linesDir string, geometryDir string, countriesFile string) *Store {
	return &Store{
		LinesDir:      linesDir,
		GeometryDir:   geometryDir,
		CountriesFile: countriesFile,
	}
}

// EnsureDirs creates the lines and geometry directories when missing
func (s *Store) EnsureDirs() error {
	for _, dir := range []string{s.LinesDir, s.GeometryDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	return nil
}

//
// Lines
//

func (s *Store) LinesPath(countryKey string) string {
	return filepath.Join(s.LinesDir, countryKey+fileExtension)
}

func (s *Store) LinesExist(countryKey string) bool {
	return fileExists(s.LinesPath(countryKey))
}

func (s *Store) ReadLines(countryKey string) ([]metro.Line, error) {
	var lines []metro.Line
	if err := readJSON(s.LinesPath(countryKey), &lines); err != nil {
		return nil, err
	}

	return lines, nil
}

func (s *Store) WriteLines(countryKey string, lines []metro.Line) error {
	if lines == nil {
		lines = []metro.Line{}
	}

	return writeJSON(s.LinesPath(countryKey), lines)
}

// LineKeys lists the country keys that have a lines file, sorted ascending.
// A missing lines directory is returned as an error wrapping fs.ErrNotExist.
func (s *Store) LineKeys() ([]string, error) {
	entries, err := os.ReadDir(s.LinesDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.LinesDir, err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}

		keys = append(keys, strings.TrimSuffix(entry.Name(), fileExtension))
	}
	slices.Sort(keys)

	return keys, nil
}

// KnownLineIDs collects every relation id referenced by any lines file.
// Files that cannot be parsed contribute nothing.
func (s *Store) KnownLineIDs() (map[int64]struct{}, error) {
	ids := map[int64]struct{}{}

	keys, err := s.LineKeys()
	if errors.Is(err, fs.ErrNotExist) {
		return ids, nil
	} else if err != nil {
		return nil, err
	}

	for _, key := range keys {
		var records []struct {
			ID *int64 `json:"id"`
		}
		if err := readJSON(s.LinesPath(key), &records); err != nil {
			log.Debug().Err(err).Str("file", s.LinesPath(key)).Msg("Ignoring unreadable lines file")
			continue
		}

		for _, record := range records {
			if record.ID != nil {
				ids[*record.ID] = struct{}{}
			}
		}
	}

	return ids, nil
}

//
// Geometry
//

func (s *Store) GeometryPath(relationID int64) string {
	return filepath.Join(s.GeometryDir, strconv.FormatInt(relationID, 10)+fileExtension)
}

func (s *Store) GeometryExists(relationID int64) bool {
	return fileExists(s.GeometryPath(relationID))
}

func (s *Store) ReadGeometry(relationID int64) (*metro.Geometry, error) {
	var geometry metro.Geometry
	if err := readJSON(s.GeometryPath(relationID), &geometry); err != nil {
		return nil, err
	}
	geometry.Normalise()

	return &geometry, nil
}

func (s *Store) WriteGeometry(relationID int64, geometry *metro.Geometry) error {
	return writeJSON(s.GeometryPath(relationID), geometry)
}

//
// Countries
//

func (s *Store) ReadCountries() ([]string, error) {
	var countries []string
	if err := readJSON(s.CountriesFile, &countries); err != nil {
		return nil, err
	}

	return countries, nil
}

func (s *Store) WriteCountries(countries []string) error {
	if countries == nil {
		countries = []string{}
	}

	return writeJSON(s.CountriesFile, countries)
}

//
// JSON helpers
//

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

// writeJSON stores v as compact JSON without HTML escaping, so names keep their & < >
func writeJSON(path string, v interface{}) error {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return os.WriteFile(path, bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), 0644)
}
