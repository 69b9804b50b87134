// v1
// internal/series/parameter.go
package series

// Parameter identifies a measured indoor-environment quantity.
type Parameter string

const (
	Temperature      Parameter = "temperature"       // °C
	CO2              Parameter = "co2"               // ppm
	Humidity         Parameter = "humidity"          // %RH
	Noise            Parameter = "noise"             // dB(A)
	Illuminance      Parameter = "illuminance"       // lux
	DaylightFactor   Parameter = "daylight_factor"   // %
	PM25             Parameter = "pm25"              // µg/m³
	Formaldehyde     Parameter = "formaldehyde"      // µg/m³
	Benzene          Parameter = "benzene"           // µg/m³
	Radon            Parameter = "radon"             // Bq/m³
	VentilationRatio Parameter = "ventilation_ratio" // supplied/required airflow
	Mold             Parameter = "mold"              // inspection text, not numeric
)

// String returns the parameter identifier.
func (p Parameter) String() string { return string(p) }

// IsValid reports whether p is a recognized parameter.
func (p Parameter) IsValid() bool {
	switch p {
	case Temperature, CO2, Humidity, Noise, Illuminance, DaylightFactor,
		PM25, Formaldehyde, Benzene, Radon, VentilationRatio, Mold:
		return true
	}
	return false
}
