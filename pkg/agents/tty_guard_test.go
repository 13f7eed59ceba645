package agents

import "testing"

func TestShouldSuppressTTYQueries(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		envRobot bool
		want     bool
	}{
		{"plain tui run", []string{"cv", "run.json"}, false, false},
		{"export flag", []string{"cv", "-export", "out.html"}, false, true},
		{"export flag with equals", []string{"cv", "-export=out.html"}, false, true},
		{"double dash export", []string{"cv", "--export", "out.html"}, false, true},
		{"version flag", []string{"cv", "-version"}, false, true},
		{"help flag", []string{"cv", "--help"}, false, true},
		{"robot env", []string{"cv", "run.json"}, true, true},
		{"no args", []string{"cv"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldSuppressTTYQueries(tt.args, tt.envRobot); got != tt.want {
				t.Errorf("shouldSuppressTTYQueries = %v, want %v", got, tt.want)
			}
		})
	}
}
