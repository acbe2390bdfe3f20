package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/address-parser/usaddress/address"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected ParserCfg
		wantErr  bool
	}{
		{
			name:     "Empty_Uses_Defaults",
			input:    "",
			expected: Default(),
		},
		{
			name:  "Partial_Override",
			input: "expand_streets: false\nsimilarity:\n  jw_weight: 0.9\n",
			expected: ParserCfg{
				ExpandStreets: false,
				CacheSize:     10000,
				Similarity:    SimilarityCfg{JWWeight: 0.9, LevWeight: 0.4},
				LogLevel:      "info",
			},
		},
		{
			name:    "Negative_Cache",
			input:   "cache_size: -1\n",
			wantErr: true,
		},
		{
			name:    "Malformed",
			input:   "expand_streets: [\n",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !reflect.DeepEqual(cfg, tc.expected) {
				t.Errorf("Parse = %+v, expected %+v", cfg, tc.expected)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parser.yaml")
	content := "expand_streets: false\ncache_size: 50\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ExpandStreets || cfg.CacheSize != 50 || cfg.LogLevel != "debug" {
		t.Errorf("Load = %+v", cfg)
	}
	// keys missing from the file keep their defaults
	if cfg.Similarity != Default().Similarity {
		t.Errorf("Similarity = %+v, expected defaults", cfg.Similarity)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADDRESS_CACHE_SIZE", "7")
	t.Setenv("ADDRESS_SIMILARITY_LEV_WEIGHT", "0.25")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CacheSize != 7 {
		t.Errorf("CacheSize = %d, expected 7", cfg.CacheSize)
	}
	if cfg.Similarity.LevWeight != 0.25 {
		t.Errorf("LevWeight = %v, expected 0.25", cfg.Similarity.LevWeight)
	}
	if !cfg.ExpandStreets {
		t.Error("ExpandStreets should keep its default")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "parser.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("config/parser.yaml = %+v, expected the defaults %+v", cfg, Default())
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.ExpandStreets = false

	a, err := address.New("1600 Pennsylvania Av, Washington DC", cfg.Options(nil)...)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Street(), []string{"Pennsylvania Av"}) {
		t.Errorf("Street = %q, expected the literal only", a.Street())
	}
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	logger, err := cfg.NewLogger()
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger")
	}

	cfg.LogLevel = "loud"
	if _, err := cfg.NewLogger(); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
