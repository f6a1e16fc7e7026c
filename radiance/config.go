package radiance

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"irband/model"
)

var runCfg Config

// Config carries the defaults for a run plus the parallelism knobs. Every
// field can be overridden from conf/config.ini; a missing file leaves the
// built-in defaults in place.
type Config struct {
	InitialThickness float64
	ScaleHeight      float64
	TotalHeight      float64

	MixingRatio  float64
	SurfaceTemp  float64
	SurfacePress float64
	LapseRate    float64
	TropopauseT  float64

	Bandwidth  float64
	SolidAngle float64

	Workers           int
	ParallelThreshold int
}

func init() {
	runCfg = defaultConfig()
}

func defaultConfig() Config {
	return Config{
		InitialThickness: 100,    // m
		ScaleHeight:      8000,   // m
		TotalHeight:      12000,  // m
		MixingRatio:      400e-6, // 400 ppm
		SurfaceTemp:      288,    // K
		SurfacePress:     101325, // Pa
		LapseRate:        0.0065, // K/m
		TropopauseT:      217,    // K

		Bandwidth:  1e12,   // Hz, fractional width of the 15 µm band
		SolidAngle: 2e-5,   // sr, detector collection cone

		Workers:           4,
		ParallelThreshold: 64,
	}
}

// LoadConfig reads the ini file at path into the package configuration.
// Unknown keys are ignored and absent keys keep their defaults.
func LoadConfig(path string) {
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("config file not loaded, using defaults")
		return
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	d := defaultConfig()
	scenario := file.Section("scenario")
	atmosphere := file.Section("atmosphere")
	band := file.Section("band")
	engine := file.Section("engine")

	runCfg = Config{
		InitialThickness: scenario.Key("InitialThickness").MustFloat64(d.InitialThickness),
		ScaleHeight:      scenario.Key("ScaleHeight").MustFloat64(d.ScaleHeight),
		TotalHeight:      scenario.Key("TotalHeight").MustFloat64(d.TotalHeight),

		MixingRatio:  atmosphere.Key("MixingRatio").MustFloat64(d.MixingRatio),
		SurfaceTemp:  atmosphere.Key("SurfaceTemp").MustFloat64(d.SurfaceTemp),
		SurfacePress: atmosphere.Key("SurfacePress").MustFloat64(d.SurfacePress),
		LapseRate:    atmosphere.Key("LapseRate").MustFloat64(d.LapseRate),
		TropopauseT:  atmosphere.Key("TropopauseTemp").MustFloat64(d.TropopauseT),

		Bandwidth:  band.Key("Bandwidth").MustFloat64(d.Bandwidth),
		SolidAngle: band.Key("SolidAngle").MustFloat64(d.SolidAngle),

		Workers:           engine.Key("Workers").MustInt(d.Workers),
		ParallelThreshold: engine.Key("ParallelThreshold").MustInt(d.ParallelThreshold),
	}
}

// DefaultScenario builds a Scenario from the package configuration.
func DefaultScenario() model.Scenario {
	return model.Scenario{
		InitialThickness: runCfg.InitialThickness,
		ScaleHeight:      runCfg.ScaleHeight,
		TotalHeight:      runCfg.TotalHeight,
		MixingRatio:      runCfg.MixingRatio,
		Bandwidth:        runCfg.Bandwidth,
		SolidAngle:       runCfg.SolidAngle,
		SurfaceTemp:      runCfg.SurfaceTemp,
		SurfacePress:     runCfg.SurfacePress,
		LapseRate:        runCfg.LapseRate,
		TropopauseT:      runCfg.TropopauseT,
	}
}
