package handler

import "testing"

func TestValidateTransition_ActionLifecycle(t *testing.T) {
	tests := []struct {
		current string
		target  string
		wantErr bool
	}{
		{"pending", "in_progress", false},
		{"pending", "cancelled", false},
		{"in_progress", "completed", false},
		{"in_progress", "cancelled", false},
		{"pending", "completed", true},
		{"completed", "pending", true},
		{"completed", "cancelled", true},
		{"cancelled", "in_progress", true},
		{"bogus", "pending", true},
	}
	for _, tt := range tests {
		err := ValidateTransition(actionTransitions, tt.current, tt.target)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTransition(%q, %q) err = %v, wantErr %v", tt.current, tt.target, err, tt.wantErr)
		}
	}
}
