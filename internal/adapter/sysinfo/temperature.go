package sysinfo

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/sensors"
)

const tempUnavailable = "N/A"

// cpuTemperature reads the CPU temperature, preferring the kernel thermal
// files under sysPath and falling back to the sensors library. Returns
// "N/A" when no sensor is readable.
func cpuTemperature(ctx context.Context, sysPath string) string {
	candidates := []string{
		sysPath + "/class/thermal/thermal_zone0/temp",
		sysPath + "/class/hwmon/hwmon0/temp1_input",
		sysPath + "/class/hwmon/hwmon1/temp1_input",
	}
	for _, path := range candidates {
		if formatted, ok := readThermalFile(path); ok {
			return formatted
		}
	}

	temps, err := sensors.TemperaturesWithContext(ctx)
	if err != nil || len(temps) == 0 {
		return tempUnavailable
	}
	for _, t := range temps {
		if strings.Contains(t.SensorKey, "coretemp") || strings.Contains(t.SensorKey, "cpu_thermal") {
			return formatTemperature(t.Temperature)
		}
	}
	return formatTemperature(temps[0].Temperature)
}

// readThermalFile parses one thermal sysfs file. Values above 1000 are in
// millidegrees and get scaled down.
func readThermalFile(path string) (string, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return "", false
	}
	if value > 1000 {
		value /= 1000
	}
	return formatTemperature(value), true
}

func formatTemperature(degrees float64) string {
	return fmt.Sprintf("%.1f°C", degrees)
}
