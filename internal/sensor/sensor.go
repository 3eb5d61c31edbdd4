// Package sensor reads the temperature from a DS18B20 1-wire sensor, as exposed by the w1_slave file of the w1-therm
// kernel driver:
//
//	72 01 4b 46 7f ff 0e 10 57 : crc=57 YES
//	72 01 4b 46 7f ff 0e 10 57 t=23125
package sensor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/clambin/nest-alarm/internal/thermostat"
)

// Unavailable is returned by Read when the sensor could not be read.
const Unavailable = -1.0

var ErrCRC = errors.New("crc check failed")

// PathSource returns the path of the sensor file.
type PathSource interface {
	Get(key string) (string, bool)
}

// Sensor reads the temperature from a w1_slave file. The path is looked up on every read, so it can be changed at runtime.
type Sensor struct {
	Paths  PathSource
	Key    string
	Logger *slog.Logger
}

// Read returns the measured temperature in ºF, or Unavailable if the sensor could not be read.
func (s Sensor) Read() float64 {
	path, ok := s.Paths.Get(s.Key)
	if !ok || path == "" {
		s.Logger.Warn("sensor path not set")
		return Unavailable
	}
	celsius, err := ReadFile(path)
	if err != nil {
		s.Logger.Warn("failed to read sensor", "path", path, "err", err)
		return Unavailable
	}
	tempF := thermostat.CelsiusToFahrenheit(celsius)
	s.Logger.Debug("sensor read", "path", path, "celsius", celsius, "fahrenheit", tempF)
	return tempF
}

// ReadFile reads the temperature (in ºC) from the w1_slave file at path.
func ReadFile(path string) (float64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !stat.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse reads the temperature (in ºC) from the contents of a w1_slave file.
func Parse(r io.Reader) (float64, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() && len(lines) < 2 {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if len(lines) < 2 {
		return 0, errors.New("incomplete sensor data")
	}
	if !strings.Contains(lines[0], "YES") {
		return 0, ErrCRC
	}
	_, value, ok := strings.Cut(lines[1], "t=")
	if !ok {
		return 0, errors.New("no temperature found")
	}
	milliCelsius, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid temperature: %w", err)
	}
	return float64(milliCelsius) / 1000, nil
}
