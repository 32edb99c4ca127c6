package velo

import (
	"errors"
	"testing"
)

// fund puts capital into a fresh ledger without going through a prompt.
func fund(t *testing.T, l *Ledger, amount int) {
	t.Helper()
	commit, err := l.SetTotalCapital(M(amount))
	if err != nil {
		t.Fatalf("SetTotalCapital(%d): %v", amount, err)
	}
	commit.Apply()
}

// mustCreate creates an envelope and confirms it.
func mustCreate(t *testing.T, l *Ledger, name string, limit int) *Envelope {
	t.Helper()
	commit, err := l.CreateEnvelope(name, M(limit), "", "")
	if err != nil {
		t.Fatalf("CreateEnvelope(%q, %d): %v", name, limit, err)
	}
	return commit.Apply()
}

func TestCreateEnvelope(t *testing.T) {
	testCases := []struct {
		name     string
		capital  int
		preAlloc int // limit of an envelope created beforehand
		envName  string
		limit    int
		wantErr  bool
	}{
		{name: "accepted", capital: 10000, envName: "Food", limit: 3000},
		{name: "accepted at exact liquidity", capital: 10000, envName: "Food", limit: 10000},
		{name: "empty name", capital: 10000, envName: "  ", limit: 100, wantErr: true},
		{name: "zero limit", capital: 10000, envName: "Food", limit: 0, wantErr: true},
		{name: "negative limit", capital: 10000, envName: "Food", limit: -5, wantErr: true},
		{name: "exceeds liquidity", capital: 10000, envName: "Food", limit: 10001, wantErr: true},
		{name: "exceeds remaining liquidity", capital: 10000, preAlloc: 4000, envName: "Rent", limit: 6001, wantErr: true},
		{name: "fits remaining liquidity", capital: 10000, preAlloc: 4000, envName: "Rent", limit: 6000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			fund(t, l, tc.capital)
			if tc.preAlloc > 0 {
				mustCreate(t, l, "Existing", tc.preAlloc)
			}

			commit, err := l.CreateEnvelope(tc.envName, M(tc.limit), "", "")
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected rejection, got none")
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			env := commit.Apply()
			if env.ID == "" {
				t.Error("new envelope has no id")
			}
			if !env.Balance.Equal(env.Limit) {
				t.Errorf("new envelope balance %s != limit %s", env.Balance, env.Limit)
			}
			if env.Color == "" {
				t.Error("new envelope has no color")
			}
			if got := l.Envelope(env.ID); got != env {
				t.Error("envelope not reachable by id")
			}
			if l.Allocated().GreaterThan(l.TotalCapital()) {
				t.Errorf("allocated %s exceeds capital %s", l.Allocated(), l.TotalCapital())
			}
		})
	}
}

func TestCreateEnvelopeRejectionLeavesStateUntouched(t *testing.T) {
	l := NewLedger()
	fund(t, l, 1000)
	if _, err := l.CreateEnvelope("Food", M(2000), "", ""); err == nil {
		t.Fatal("expected rejection")
	}
	if got := len(l.History(HistoryFilter{})); got != 0 {
		t.Errorf("log has %d entries, want 0", got)
	}
	for range l.Envelopes() {
		t.Fatal("envelope appeared despite rejection")
	}
}

func TestUnconfirmedCommitMutatesNothing(t *testing.T) {
	l := NewLedger()
	fund(t, l, 1000)
	if _, err := l.CreateEnvelope("Food", M(500), "", ""); err != nil {
		t.Fatal(err)
	}
	// The commit is dropped without Apply: state stays as it was.
	if !l.Allocated().IsZero() {
		t.Errorf("allocated %s, want zero", l.Allocated())
	}
}

func TestUpdateEnvelope(t *testing.T) {
	limit := func(v int) *Money { m := M(v); return &m }
	name := func(s string) *string { return &s }

	testCases := []struct {
		name    string
		patch   EnvelopePatch
		wantErr bool
	}{
		// Capital 10000, target Food limit 3000, sibling Rent limit 5000.
		// Headroom for Food = liquid 2000 + own 3000 = 5000.
		{name: "grow within headroom", patch: EnvelopePatch{Limit: limit(5000)}},
		{name: "grow past headroom", patch: EnvelopePatch{Limit: limit(5001)}, wantErr: true},
		{name: "shrink", patch: EnvelopePatch{Limit: limit(1000)}},
		{name: "zero limit", patch: EnvelopePatch{Limit: limit(0)}, wantErr: true},
		{name: "rename", patch: EnvelopePatch{Name: name("Groceries")}},
		{name: "blank rename", patch: EnvelopePatch{Name: name("  ")}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			fund(t, l, 10000)
			food := mustCreate(t, l, "Food", 3000)
			mustCreate(t, l, "Rent", 5000)

			commit, err := l.UpdateEnvelope(food.ID, tc.patch)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected rejection, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			commit.Apply()

			if tc.patch.Limit != nil && !food.Limit.Equal(*tc.patch.Limit) {
				t.Errorf("limit %s, want %s", food.Limit, *tc.patch.Limit)
			}
			if tc.patch.Name != nil && food.Name != "Groceries" {
				t.Errorf("name %q, want Groceries", food.Name)
			}
		})
	}
}

func TestUpdateEnvelopeDoesNotReconcileBalance(t *testing.T) {
	l := NewLedger()
	fund(t, l, 10000)
	food := mustCreate(t, l, "Food", 3000)

	lower := M(1000)
	commit, err := l.UpdateEnvelope(food.ID, EnvelopePatch{Limit: &lower})
	if err != nil {
		t.Fatal(err)
	}
	commit.Apply()

	// The balance stays at the old value, above the new limit.
	if !food.Balance.Equal(M(3000)) {
		t.Errorf("balance %s, want %s", food.Balance, M(3000))
	}
	if !food.Balance.GreaterThan(food.Limit) {
		t.Error("expected balance above the lowered limit")
	}
}

func TestUpdateEnvelopeUnknownID(t *testing.T) {
	l := NewLedger()
	fund(t, l, 1000)
	_, err := l.UpdateEnvelope("nope", EnvelopePatch{})
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestDeleteEnvelope(t *testing.T) {
	l := NewLedger()
	fund(t, l, 10000)
	food := mustCreate(t, l, "Food", 3000)
	if _, err := l.RecordPayment(food.ID, M(500), "lunch"); err != nil {
		t.Fatal(err)
	}

	commit, err := l.DeleteEnvelope(food.ID)
	if err != nil {
		t.Fatal(err)
	}
	removed := commit.Apply()
	if removed.ID != food.ID {
		t.Errorf("removed %q, want %q", removed.ID, food.ID)
	}
	if l.Envelope(food.ID) != nil {
		t.Error("envelope still reachable after delete")
	}

	// The allocation returned to the liquid pool.
	if !l.Unallocated().Equal(l.TotalCapital()) {
		t.Errorf("liquid %s, want full capital %s", l.Unallocated(), l.TotalCapital())
	}

	// Historical transactions survive, still reachable by the dangling id.
	history := l.History(HistoryFilter{Unit: food.ID})
	if len(history) != 1 {
		t.Fatalf("history has %d entries, want 1", len(history))
	}
	if history[0].EnvelopeName != "Food" {
		t.Errorf("denormalized name %q, want Food", history[0].EnvelopeName)
	}

	if _, err := l.DeleteEnvelope(food.ID); err == nil {
		t.Error("second delete should report not found")
	}
}

func TestRecordPayment(t *testing.T) {
	testCases := []struct {
		name    string
		amount  int
		note    string
		badID   bool
		wantErr bool
	}{
		{name: "accepted", amount: 500, note: "lunch"},
		{name: "zero amount", amount: 0, note: "lunch", wantErr: true},
		{name: "negative amount", amount: -5, note: "lunch", wantErr: true},
		{name: "empty note", amount: 500, note: " ", wantErr: true},
		{name: "unknown envelope", amount: 500, note: "lunch", badID: true, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			fund(t, l, 10000)
			food := mustCreate(t, l, "Food", 3000)

			id := food.ID
			if tc.badID {
				id = "nope"
			}
			tx, err := l.RecordPayment(id, M(tc.amount), tc.note)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected rejection, got none")
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %T: %v", err, err)
				}
				// Fail closed: nothing moved.
				if !food.Balance.Equal(M(3000)) || !l.TotalCapital().Equal(M(10000)) {
					t.Error("rejected payment mutated state")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !food.Balance.Equal(M(2500)) {
				t.Errorf("balance %s, want %s", food.Balance, M(2500))
			}
			if !food.Limit.Equal(M(2500)) {
				t.Errorf("limit %s, want %s", food.Limit, M(2500))
			}
			if !l.TotalCapital().Equal(M(9500)) {
				t.Errorf("capital %s, want %s", l.TotalCapital(), M(9500))
			}

			history := l.History(HistoryFilter{})
			if len(history) != 1 {
				t.Fatalf("log has %d entries, want 1", len(history))
			}
			got := history[0]
			if got.ID != tx.ID || got.Type != Debit || got.Status != Completed {
				t.Errorf("unexpected log entry %+v", got)
			}
			if !got.Amount.Equal(M(500)) || got.Note != "lunch" {
				t.Errorf("entry amount %s note %q, want %s lunch", got.Amount, got.Note, M(500))
			}
			if got.Merchant != "MANUAL PAYMENT" {
				t.Errorf("merchant %q, want MANUAL PAYMENT", got.Merchant)
			}
		})
	}
}

func TestRecordPaymentCanOverdraw(t *testing.T) {
	// There is deliberately no guard against a negative balance.
	l := NewLedger()
	fund(t, l, 1000)
	food := mustCreate(t, l, "Food", 1000)

	if _, err := l.RecordPayment(food.ID, M(1500), "splurge"); err != nil {
		t.Fatal(err)
	}
	if !food.Balance.IsNegative() || !food.Limit.IsNegative() {
		t.Errorf("expected negative balance and limit, got %s / %s", food.Balance, food.Limit)
	}
}

func TestRecordIncome(t *testing.T) {
	l := NewLedger()
	fund(t, l, 10000)

	if _, err := l.RecordIncome("Salary", M(0), ""); err == nil {
		t.Fatal("zero income should be rejected")
	}

	commit, err := l.RecordIncome("Salary", M(2000), "october")
	if err != nil {
		t.Fatal(err)
	}
	tx := commit.Apply()

	if !l.TotalCapital().Equal(M(12000)) {
		t.Errorf("capital %s, want %s", l.TotalCapital(), M(12000))
	}
	if tx.EnvelopeID != SystemEnvelopeID {
		t.Errorf("envelope id %q, want %q", tx.EnvelopeID, SystemEnvelopeID)
	}
	if tx.EnvelopeName != "CASH_IN" || tx.Merchant != "Salary" || tx.Type != Credit {
		t.Errorf("unexpected income entry %+v", tx)
	}
	if got := len(l.History(HistoryFilter{})); got != 1 {
		t.Errorf("log has %d entries, want 1", got)
	}
}

func TestRecordIncomeBlankSource(t *testing.T) {
	l := NewLedger()
	commit, err := l.RecordIncome("  ", M(100), "")
	if err != nil {
		t.Fatal(err)
	}
	if tx := commit.Apply(); tx.Merchant != "OTHER" {
		t.Errorf("merchant %q, want OTHER", tx.Merchant)
	}
}

func TestSetTotalCapitalWritesNoLogEntry(t *testing.T) {
	l := NewLedger()
	fund(t, l, 10000)
	if got := len(l.History(HistoryFilter{})); got != 0 {
		t.Errorf("log has %d entries after capital correction, want 0", got)
	}
}

func TestAllocationNeverExceedsCapital(t *testing.T) {
	// Any sequence of individually accepted create and update calls keeps
	// the allocation within the capital.
	l := NewLedger()
	fund(t, l, 10000)

	steps := []func() (*Commit[*Envelope], error){
		func() (*Commit[*Envelope], error) { return l.CreateEnvelope("A", M(4000), "", "") },
		func() (*Commit[*Envelope], error) { return l.CreateEnvelope("B", M(4000), "", "") },
		func() (*Commit[*Envelope], error) { return l.CreateEnvelope("C", M(4000), "", "") }, // rejected
		func() (*Commit[*Envelope], error) {
			m := M(6000)
			return l.UpdateEnvelope(l.FindEnvelope("A").ID, EnvelopePatch{Limit: &m})
		},
		func() (*Commit[*Envelope], error) {
			m := M(7000)
			return l.UpdateEnvelope(l.FindEnvelope("B").ID, EnvelopePatch{Limit: &m}) // rejected
		},
	}
	for i, step := range steps {
		if commit, err := step(); err == nil {
			commit.Apply()
		}
		if l.Allocated().GreaterThan(l.TotalCapital()) {
			t.Fatalf("step %d: allocated %s exceeds capital %s", i, l.Allocated(), l.TotalCapital())
		}
	}
}

func TestFindEnvelope(t *testing.T) {
	l := NewLedger()
	fund(t, l, 10000)
	food := mustCreate(t, l, "Food", 1000)
	mustCreate(t, l, "food", 1000)
	rent := mustCreate(t, l, "Rent", 1000)

	if got := l.FindEnvelope(rent.ID); got != rent {
		t.Error("lookup by id failed")
	}
	if got := l.FindEnvelope("rent"); got != rent {
		t.Error("case-insensitive name lookup failed")
	}
	if got := l.FindEnvelope("FOOD"); got != nil {
		t.Errorf("ambiguous name resolved to %q, want nil", got.Name)
	}
	if got := l.FindEnvelope(food.ID); got != food {
		t.Error("id lookup must win over name ambiguity")
	}
	if got := l.FindEnvelope("unknown"); got != nil {
		t.Error("unknown key resolved")
	}
}

func TestHistoryFilter(t *testing.T) {
	l := NewLedger()
	fund(t, l, 10000)
	food := mustCreate(t, l, "Food", 3000)
	travel := mustCreate(t, l, "Travel", 2000)

	if _, err := l.RecordPayment(food.ID, M(500), "Lunch at the corner"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordPayment(travel.ID, M(120), "bus ticket"); err != nil {
		t.Fatal(err)
	}
	commit, err := l.RecordIncome("Salary", M(2000), "")
	if err != nil {
		t.Fatal(err)
	}
	commit.Apply()

	testCases := []struct {
		name   string
		filter HistoryFilter
		want   int
	}{
		{name: "all", filter: HistoryFilter{}, want: 3},
		{name: "one unit", filter: HistoryFilter{Unit: food.ID}, want: 1},
		{name: "income only", filter: HistoryFilter{Unit: SystemEnvelopeID}, want: 1},
		{name: "search amount digits", filter: HistoryFilter{Search: "12"}, want: 1},
		{name: "search note case-insensitive", filter: HistoryFilter{Search: "lUnCh"}, want: 1},
		{name: "search no match", filter: HistoryFilter{Search: "pizza"}, want: 0},
		{name: "unit and search", filter: HistoryFilter{Unit: travel.ID, Search: "bus"}, want: 1},
		{name: "unit excludes search match", filter: HistoryFilter{Unit: food.ID, Search: "bus"}, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(l.History(tc.filter)); got != tc.want {
				t.Errorf("got %d entries, want %d", got, tc.want)
			}
		})
	}

	// Newest first: the income entry is the head of the unfiltered log.
	if head := l.History(HistoryFilter{})[0]; head.Type != Credit {
		t.Errorf("head of log is %v, want the latest entry (credit)", head.Type)
	}
}

func TestWalkthrough(t *testing.T) {
	// One scenario across the whole state machine.
	l := NewLedger()
	fund(t, l, 10000)

	food := mustCreate(t, l, "Food", 3000)
	if !l.Allocated().Equal(M(3000)) || !l.Unallocated().Equal(M(7000)) {
		t.Fatalf("after create: allocated %s liquid %s", l.Allocated(), l.Unallocated())
	}

	if _, err := l.RecordPayment(food.ID, M(500), "lunch"); err != nil {
		t.Fatal(err)
	}
	if !food.Balance.Equal(M(2500)) || !food.Limit.Equal(M(2500)) || !l.TotalCapital().Equal(M(9500)) {
		t.Fatalf("after payment: balance %s limit %s capital %s", food.Balance, food.Limit, l.TotalCapital())
	}

	commit, err := l.RecordIncome("Salary", M(2000), "")
	if err != nil {
		t.Fatal(err)
	}
	commit.Apply()
	if !l.TotalCapital().Equal(M(11500)) {
		t.Fatalf("after income: capital %s", l.TotalCapital())
	}

	// Liquid is 11500 - 2500 = 9000: creating Rent at exactly 9000 passes.
	if !l.Unallocated().Equal(M(9000)) {
		t.Fatalf("liquid %s, want %s", l.Unallocated(), M(9000))
	}
	mustCreate(t, l, "Rent", 9000)
	if !l.Unallocated().IsZero() {
		t.Errorf("liquid %s after boundary create, want zero", l.Unallocated())
	}
}
