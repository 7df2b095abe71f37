// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestClampMin(t *testing.T) {
	v := Clamp(1, 0, 10)
	if v != 1 {
		t.Errorf("Clamp(1,0,10) = %v", v)
	}
}

func TestClampMax(t *testing.T) {
	v := Clamp(1, 100, 10)
	if v != 10 {
		t.Errorf("Clamp(1,100,10) = %v", v)
	}
}

func TestClampVal(t *testing.T) {
	v := Clamp(1, 5, 10)
	if v != 5 {
		t.Errorf("Clamp(1,5,10) = %v", v)
	}
}

func TestAbs(t *testing.T) {
	if v := Abs(float32(-1.5)); v != 1.5 {
		t.Errorf("Abs(-1.5) = %v", v)
	}
	if v := Abs(3); v != 3 {
		t.Errorf("Abs(3) = %v", v)
	}
}
