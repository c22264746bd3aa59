package cmd

import "testing"

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseTaskID(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTaskID(%q) succeeded, want error", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTaskID(%q) error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("parseTaskID(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestConfirmAssumeYes(t *testing.T) {
	if !confirm("Cancel task 1?", true) {
		t.Error("confirm with --yes should not prompt")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"watch":   false,
		"submit":  false,
		"tasks":   false,
		"logs":    false,
		"outputs": false,
		"cancel":  false,
		"retry":   false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
