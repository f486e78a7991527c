package version

import "testing"

func TestSnapshotCompatible(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		want   bool
	}{
		{"current schema", SnapshotSchema, true},
		{"same major newer minor", "1.4.0", true},
		{"legacy snapshot without version", "", true},
		{"future major", "2.0.0", false},
		{"garbage", "not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapshotCompatible(tt.schema); got != tt.want {
				t.Errorf("SnapshotCompatible(%q) = %v, want %v", tt.schema, got, tt.want)
			}
		})
	}
}
