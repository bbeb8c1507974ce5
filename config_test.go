package javagen

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero config", Config{}, false},
		{
			"full config",
			Config{
				OutDir:           "out",
				Provider:         "source",
				Packages:         []string{"example.com/api"},
				JavaPackage:      "com.example.api",
				PreserveComments: "none",
				FieldModifier:    "private",
			},
			false,
		},
		{"reflection provider", Config{Provider: "reflection"}, false},
		{"bad provider", Config{Provider: "bogus"}, true},
		{"bad comments mode", Config{PreserveComments: "sometimes"}, true},
		{"bad modifier", Config{FieldModifier: "friendly"}, true},
		{"java package with space", Config{JavaPackage: "com. example"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyConfigDefaults(t *testing.T) {
	in := &Config{}
	out := applyConfigDefaults(in)

	if out.Provider != "source" {
		t.Errorf("Provider = %q, want %q", out.Provider, "source")
	}
	if out.PreserveComments != "default" {
		t.Errorf("PreserveComments = %q, want %q", out.PreserveComments, "default")
	}
	if out.FieldModifier != "public" {
		t.Errorf("FieldModifier = %q, want %q", out.FieldModifier, "public")
	}
	if out.Indent != "  " {
		t.Errorf("Indent = %q, want two spaces", out.Indent)
	}

	// Input is never mutated.
	if in.Provider != "" {
		t.Error("applyConfigDefaults mutated its input")
	}

	custom := &Config{Provider: "reflection", FieldModifier: "private", Indent: "\t"}
	out = applyConfigDefaults(custom)
	if out.Provider != "reflection" || out.FieldModifier != "private" || out.Indent != "\t" {
		t.Errorf("explicit values were overridden: %+v", out)
	}
}
