package radiance

import (
	"testing"

	"gopkg.in/ini.v1"
)

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	runCfg = defaultConfig()
	LoadConfig("does/not/exist.ini")
	if runCfg != defaultConfig() {
		t.Errorf("defaults changed after missing file: %+v", runCfg)
	}
}

func TestLoadCfgOverrides(t *testing.T) {
	t.Cleanup(func() { runCfg = defaultConfig() })

	src := []byte(`
[scenario]
TotalHeight = 20000

[atmosphere]
MixingRatio = 0.0008

[engine]
Workers = 8
`)
	file, err := ini.Load(src)
	if err != nil {
		t.Fatal(err)
	}
	loadCfg(file)

	if runCfg.TotalHeight != 20000 {
		t.Errorf("TotalHeight %g, want 20000", runCfg.TotalHeight)
	}
	if runCfg.MixingRatio != 0.0008 {
		t.Errorf("MixingRatio %g, want 0.0008", runCfg.MixingRatio)
	}
	if runCfg.Workers != 8 {
		t.Errorf("Workers %d, want 8", runCfg.Workers)
	}
	// Untouched keys keep their defaults.
	if runCfg.ScaleHeight != defaultConfig().ScaleHeight {
		t.Errorf("ScaleHeight %g changed without an override", runCfg.ScaleHeight)
	}
}
