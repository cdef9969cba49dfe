package renderer

import "testing"

func TestCharacterState(t *testing.T) {
	tests := []struct {
		moving, rolling, stunned bool
		want                     State
	}{
		{false, false, false, StateIdle},
		{true, false, false, StateMoving},
		{true, true, false, StateRolling},
		{true, false, true, StateStunned},
		{false, true, true, StateRolling},
	}

	for _, tt := range tests {
		got := CharacterState(tt.moving, tt.rolling, tt.stunned)
		if got != tt.want {
			t.Errorf("CharacterState(%v, %v, %v) = %v, want %v",
				tt.moving, tt.rolling, tt.stunned, got, tt.want)
		}
	}
}

func TestStateTintsAreDistinct(t *testing.T) {
	seen := make(map[[3]float32]State)
	for _, s := range []State{StateIdle, StateMoving, StateRolling, StateStunned} {
		tint := StateTint(s)
		if prev, ok := seen[tint]; ok {
			t.Errorf("%v shares tint with %v", s, prev)
		}
		seen[tint] = s
	}
}

func TestGridVertices(t *testing.T) {
	v := gridVertices(2)
	// 5 positions per axis, two lines each, 2 vertices per line, 3 floats per vertex
	if want := 5 * 2 * 2 * 3; len(v) != want {
		t.Errorf("len = %d, want %d", len(v), want)
	}
	if len(arrowVertices())%9 != 0 {
		t.Error("arrow vertices must form whole triangles")
	}
}
