package junction

import "testing"

func TestSignal_StartsRed(t *testing.T) {
	sig := newSignal("ns", 3, 2)

	if sig.State() != SignalRed {
		t.Errorf("Expected new signal to be red, got %s", sig.State())
	}
	if sig.Phase() != "ns" {
		t.Errorf("Expected phase 'ns', got '%s'", sig.Phase())
	}
	if sig.StateEnteredAt() != 0 {
		t.Errorf("Expected state entered at 0, got %d", sig.StateEnteredAt())
	}
}

func TestSignal_TurnGreen(t *testing.T) {
	sig := newSignal("ns", 3, 2)

	sig.turnGreen(5)

	if sig.State() != SignalGreen {
		t.Errorf("Expected green, got %s", sig.State())
	}
	if sig.StateEnteredAt() != 5 {
		t.Errorf("Expected state entered at 5, got %d", sig.StateEnteredAt())
	}
	if sig.Elapsed(8) != 3 {
		t.Errorf("Expected elapsed 3, got %d", sig.Elapsed(8))
	}
}

func TestSignal_BeginYellowRefusedBeforeMinGreen(t *testing.T) {
	sig := newSignal("ns", 3, 2)
	sig.turnGreen(0)

	for now := 0; now < 3; now++ {
		if sig.beginYellow(now) {
			t.Errorf("Expected yellow to be refused at elapsed %d", now)
		}
		if sig.State() != SignalGreen {
			t.Errorf("Expected refusal to leave state green, got %s", sig.State())
		}
	}
}

func TestSignal_BeginYellowAtExactlyMinGreen(t *testing.T) {
	sig := newSignal("ns", 3, 2)
	sig.turnGreen(0)

	if !sig.beginYellow(3) {
		t.Error("Expected yellow to begin once the minimum green elapsed")
	}
	if sig.State() != SignalYellow {
		t.Errorf("Expected yellow, got %s", sig.State())
	}
	if sig.StateEnteredAt() != 3 {
		t.Errorf("Expected yellow entered at 3, got %d", sig.StateEnteredAt())
	}
}

func TestSignal_BeginYellowRefusedWhenNotGreen(t *testing.T) {
	sig := newSignal("ns", 3, 2)

	if sig.beginYellow(10) {
		t.Error("Expected yellow to be refused from red")
	}

	sig.turnGreen(10)
	sig.beginYellow(13)

	if sig.beginYellow(14) {
		t.Error("Expected yellow to be refused from yellow")
	}
}

func TestSignal_MinGreenMet(t *testing.T) {
	sig := newSignal("ns", 3, 2)

	if !sig.MinGreenMet(0) {
		t.Error("Expected red signal to report min green met")
	}

	sig.turnGreen(10)

	if sig.MinGreenMet(12) {
		t.Error("Expected min green unmet at elapsed 2")
	}
	if !sig.MinGreenMet(13) {
		t.Error("Expected min green met at elapsed 3")
	}
}

func TestSignal_YellowLastsExactDuration(t *testing.T) {
	sig := newSignal("ns", 3, 2)
	sig.turnGreen(0)
	sig.beginYellow(3)

	if sig.YellowDone(3) {
		t.Error("Expected yellow pending at elapsed 0")
	}
	if sig.YellowDone(4) {
		t.Error("Expected yellow pending at elapsed 1")
	}
	if !sig.YellowDone(5) {
		t.Error("Expected yellow done at elapsed 2")
	}
}

func TestSignal_YellowDoneFalseWhenNotYellow(t *testing.T) {
	sig := newSignal("ns", 3, 2)

	if sig.YellowDone(100) {
		t.Error("Expected red signal to never report yellow done")
	}

	sig.turnGreen(0)
	if sig.YellowDone(100) {
		t.Error("Expected green signal to never report yellow done")
	}
}

func TestSignal_FullCycle(t *testing.T) {
	sig := newSignal("ns", 3, 2)

	sig.turnGreen(0)
	if sig.State() != SignalGreen {
		t.Fatalf("Expected green, got %s", sig.State())
	}

	if !sig.beginYellow(4) {
		t.Fatal("Expected yellow to begin after min green")
	}

	if !sig.YellowDone(6) {
		t.Fatal("Expected yellow done after its full interval")
	}

	sig.turnRed(6)
	if sig.State() != SignalRed {
		t.Errorf("Expected red, got %s", sig.State())
	}
	if sig.StateEnteredAt() != 6 {
		t.Errorf("Expected red entered at 6, got %d", sig.StateEnteredAt())
	}
}

func TestSignal_PreemptionStillServesFullYellow(t *testing.T) {
	sig := newSignal("ns", 3, 4)
	sig.turnGreen(0)
	sig.beginYellow(10)

	// Even an urgent caller cannot shorten the clearance interval.
	for now := 10; now < 14; now++ {
		if sig.YellowDone(now) {
			t.Errorf("Expected yellow to hold at elapsed %d", now-10)
		}
	}
	if !sig.YellowDone(14) {
		t.Error("Expected yellow done at elapsed 4")
	}
}
