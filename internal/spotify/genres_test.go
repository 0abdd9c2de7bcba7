package spotify

import (
	"reflect"
	"testing"
)

func TestFilterAgainst(t *testing.T) {
	valid := map[string]bool{"pop": true, "dance": true, "metal": true}

	tests := []struct {
		name   string
		genres []string
		want   []string
	}{
		{"keeps known genres", []string{"pop", "lofi", "dance"}, []string{"pop", "dance"}},
		{"preserves order", []string{"metal", "pop"}, []string{"metal", "pop"}},
		{"all unknown", []string{"vaporwave"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterAgainst(valid, tt.genres)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filterAgainst() = %v, want %v", got, tt.want)
			}
		})
	}
}
