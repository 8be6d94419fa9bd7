package osm2net

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestNewOsmConfigurationDefaults(t *testing.T) {
	cfg, err := NewOsmConfiguration(nil, nil)
	if err != nil {
		t.Error(err)
		return
	}
	enabled := cfg.EnabledClasses()
	if len(enabled) != 1 || enabled[0] != LINK_CLASS_HIGHWAY {
		t.Errorf("Default configuration should enable highways only, but got %v", enabled)
	}
	if !cfg.CheckTag(LINK_CLASS_HIGHWAY, "residential") {
		t.Errorf("Way type 'residential' should be activated by default")
	}
	if cfg.CheckTag(LINK_CLASS_HIGHWAY, "footway") {
		t.Errorf("Way type 'footway' should not be activated by default")
	}
}

func TestNewOsmConfigurationUnknownNetworkType(t *testing.T) {
	_, err := NewOsmConfiguration([]string{"highway", "pipeline"}, nil)
	if err == nil {
		t.Errorf("Unknown network type should be rejected")
	}
}

func TestNewOsmConfigurationCustomWayTypes(t *testing.T) {
	cfg, err := NewOsmConfiguration([]string{"highway"}, map[LinkClass][]string{
		LINK_CLASS_HIGHWAY: {"service", "track"},
	})
	if err != nil {
		t.Error(err)
		return
	}
	if !cfg.CheckTag(LINK_CLASS_HIGHWAY, "service") || !cfg.CheckTag(LINK_CLASS_HIGHWAY, "track") {
		t.Errorf("Custom way types should be activated")
	}
	if cfg.CheckTag(LINK_CLASS_HIGHWAY, "residential") {
		t.Errorf("Default way types should be dropped after an override")
	}
}

func TestIsClassEnabled(t *testing.T) {
	cfg, err := NewOsmConfiguration([]string{"highway", "waterway"}, nil)
	if err != nil {
		t.Error(err)
		return
	}
	if !cfg.IsClassEnabled(LINK_CLASS_HIGHWAY) || !cfg.IsClassEnabled(LINK_CLASS_WATERWAY) {
		t.Errorf("Requested link classes should be enabled")
	}
	if cfg.IsClassEnabled(LINK_CLASS_RAILWAY) {
		t.Errorf("Link class 'railway' should stay disabled")
	}
}

func TestEnabledClassesOrder(t *testing.T) {
	cfg, err := NewOsmConfiguration([]string{"waterway", "highway", "railway"}, nil)
	if err != nil {
		t.Error(err)
		return
	}
	enabled := cfg.EnabledClasses()
	expected := []LinkClass{LINK_CLASS_HIGHWAY, LINK_CLASS_RAILWAY, LINK_CLASS_WATERWAY}
	if len(enabled) != len(expected) {
		t.Errorf("There should be %d enabled classes, but got %d", len(expected), len(enabled))
		return
	}
	// Evaluation order is fixed, the argument order must not leak into it
	for i := range expected {
		if enabled[i] != expected[i] {
			t.Errorf("Class %d should be %s, but got %s", i, expected[i], enabled[i])
		}
	}
}

func TestClassifyWay(t *testing.T) {
	cfg, err := NewOsmConfiguration([]string{"highway", "railway", "waterway"}, nil)
	if err != nil {
		t.Error(err)
		return
	}
	cases := []struct {
		name       string
		tags       osm.Tags
		class      LinkClass
		wayType    string
		classified bool
	}{
		{"highway", osm.Tags{{Key: "highway", Value: "residential"}}, LINK_CLASS_HIGHWAY, "residential", true},
		{"railway", osm.Tags{{Key: "railway", Value: "rail"}}, LINK_CLASS_RAILWAY, "rail", true},
		{"waterway", osm.Tags{{Key: "waterway", Value: "river"}}, LINK_CLASS_WATERWAY, "river", true},
		{"highway wins over railway", osm.Tags{{Key: "railway", Value: "rail"}, {Key: "highway", Value: "residential"}}, LINK_CLASS_HIGHWAY, "residential", true},
		{"railway wins over waterway", osm.Tags{{Key: "waterway", Value: "river"}, {Key: "railway", Value: "rail"}}, LINK_CLASS_RAILWAY, "rail", true},
		{"classification ignores activation", osm.Tags{{Key: "highway", Value: "footway"}, {Key: "railway", Value: "rail"}}, LINK_CLASS_HIGHWAY, "footway", true},
		{"area object", osm.Tags{{Key: "area", Value: "yes"}, {Key: "highway", Value: "residential"}}, 0, "", false},
		{"area disclaimer", osm.Tags{{Key: "area", Value: "no"}, {Key: "highway", Value: "residential"}}, LINK_CLASS_HIGHWAY, "residential", true},
		{"no class keys", osm.Tags{{Key: "building", Value: "yes"}}, 0, "", false},
		{"empty tags", nil, 0, "", false},
	}
	for _, testCase := range cases {
		class, wayType, ok := cfg.ClassifyWay(testCase.tags)
		if ok != testCase.classified {
			t.Errorf("Case '%s': classification should be %t, but got %t", testCase.name, testCase.classified, ok)
			continue
		}
		if class != testCase.class {
			t.Errorf("Case '%s': class should be %v, but got %v", testCase.name, testCase.class, class)
		}
		if wayType != testCase.wayType {
			t.Errorf("Case '%s': way type should be '%s', but got '%s'", testCase.name, testCase.wayType, wayType)
		}
	}
}

func TestClassifyWaySkipsDisabledClasses(t *testing.T) {
	cfg, err := NewOsmConfiguration([]string{"railway"}, nil)
	if err != nil {
		t.Error(err)
		return
	}
	tags := osm.Tags{{Key: "highway", Value: "residential"}, {Key: "railway", Value: "rail"}}
	class, wayType, ok := cfg.ClassifyWay(tags)
	if !ok {
		t.Errorf("The railway key should win after the disabled highway class is skipped")
		return
	}
	if class != LINK_CLASS_RAILWAY || wayType != "rail" {
		t.Errorf("Should be classified as railway 'rail', but got %s '%s'", class, wayType)
	}
	if _, _, ok := cfg.ClassifyWay(osm.Tags{{Key: "highway", Value: "residential"}}); ok {
		t.Errorf("Way carrying keys of disabled classes only should stay unclassified")
	}
}
