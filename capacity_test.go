package swiss

import "testing"

func TestIsValidCapacity(t *testing.T) {
	cases := map[uintptr]bool{
		0:  false,
		1:  true,
		3:  true,
		7:  true,
		15: true,
		6:  false,
		8:  false,
	}
	for n, want := range cases {
		if got := isValidCapacity(n); got != want {
			t.Errorf("isValidCapacity(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestNormalizeCapacity(t *testing.T) {
	cases := map[uintptr]uintptr{
		0:  1,
		1:  1,
		2:  3,
		3:  3,
		4:  7,
		7:  7,
		8:  15,
		15: 15,
	}
	for n, want := range cases {
		if got := normalizeCapacity(n); got != want {
			t.Errorf("normalizeCapacity(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestCapacityToGrowth(t *testing.T) {
	if got := capacityToGrowth(7, 8); got != 6 {
		t.Errorf("capacityToGrowth(7, 8) = %d, want 6", got)
	}
	if got := capacityToGrowth(15, 16); got != 15-15/8 {
		t.Errorf("capacityToGrowth(15, 16) = %d, want %d", got, 15-15/8)
	}
}

func TestGrowthToLowerBoundCapacityRoundTrips(t *testing.T) {
	for _, groupWidth := range []int{8, 16} {
		for growth := uintptr(0); growth < 64; growth++ {
			cap := growthToLowerBoundCapacity(growth, groupWidth)
			normalized := normalizeCapacity(cap)
			if capacityToGrowth(normalized, groupWidth) < growth {
				t.Errorf("groupWidth=%d growth=%d: capacity %d (normalized %d) only gives growth %d",
					groupWidth, growth, cap, normalized, capacityToGrowth(normalized, groupWidth))
			}
		}
	}
}

func TestGrowthToLowerBoundCapacityZero(t *testing.T) {
	if got := growthToLowerBoundCapacity(0, 16); got != 0 {
		t.Errorf("growthToLowerBoundCapacity(0, 16) = %d, want 0", got)
	}
}

func TestIsSmall(t *testing.T) {
	if !isSmall(0, 8) {
		t.Errorf("capacity 0 should be small")
	}
	if isSmall(7, 8) {
		t.Errorf("capacity 7 with groupWidth 8 should not be small")
	}
	if isSmall(15, 8) {
		t.Errorf("capacity 15 with groupWidth 8 should not be small")
	}
}

func TestCtrlAllocSize(t *testing.T) {
	if got := ctrlAllocSize(7, 8); got != 7+1+7 {
		t.Errorf("ctrlAllocSize(7, 8) = %d, want %d", got, 7+1+7)
	}
}
