package lexengine

import "testing"

func TestNewTileBagRemainingMatchesTileSet(t *testing.T) {
	alphabet := testAlphabet(t)
	ts, err := NewEnglishTileSet(alphabet)
	if err != nil {
		t.Fatalf("NewEnglishTileSet: %v", err)
	}
	total := 0
	for _, n := range ts.Counts {
		total += n
	}
	bag := NewTileBag(alphabet, ts)
	if got := bag.Remaining(); got != total {
		t.Errorf("Remaining() = %d, want %d", got, total)
	}
}

// TestDrawRandomConservesTiles checks property 4: every tile drawn out of the
// bag is accounted for, either back in the bag or held by the caller.
func TestDrawRandomConservesTiles(t *testing.T) {
	alphabet := testAlphabet(t)
	ts, err := NewEnglishTileSet(alphabet)
	if err != nil {
		t.Fatalf("NewEnglishTileSet: %v", err)
	}
	bag := NewTileBag(alphabet, ts)
	start := bag.Remaining()

	drawn := make([]*Tile, 0, 10)
	for i := 0; i < 10; i++ {
		tile, err := bag.DrawRandom()
		if err != nil {
			t.Fatalf("DrawRandom: %v", err)
		}
		drawn = append(drawn, tile)
	}
	if got, want := bag.Remaining(), start-10; got != want {
		t.Errorf("Remaining() after 10 draws = %d, want %d", got, want)
	}
	for _, tile := range drawn {
		bag.PutBack(tile)
	}
	if got := bag.Remaining(); got != start {
		t.Errorf("Remaining() after putting every drawn tile back = %d, want %d", got, start)
	}
}

func TestDrawRandomExhausted(t *testing.T) {
	alphabet := testAlphabet(t)
	ts, err := NewTileSet(alphabet, map[rune]int{'a': 1})
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	bag := NewTileBag(alphabet, ts)
	if _, err := bag.DrawRandom(); err != nil {
		t.Fatalf("DrawRandom: %v", err)
	}
	_, err = bag.DrawRandom()
	if err == nil {
		t.Fatal("expected DrawRandom on an empty bag to fail")
	}
	if eerr, ok := err.(*EngineError); !ok || eerr.Kind != KindExhausted {
		t.Errorf("got error %v, want KindExhausted", err)
	}
}

// TestPickForOrderIsDisjointFromSlots checks that PickForOrder never touches
// Remaining(), since the teacher's classical bag has no separate pool.
func TestPickForOrderIsDisjointFromSlots(t *testing.T) {
	alphabet := testAlphabet(t)
	ts, err := NewEnglishTileSet(alphabet)
	if err != nil {
		t.Fatalf("NewEnglishTileSet: %v", err)
	}
	bag := NewTileBag(alphabet, ts)
	before := bag.Remaining()
	seen := map[rune]bool{}
	for i := 0; i < 5; i++ {
		letter, err := bag.PickForOrder()
		if err != nil {
			t.Fatalf("PickForOrder: %v", err)
		}
		if seen[letter] {
			t.Errorf("PickForOrder returned letter %q twice without replacement", letter)
		}
		seen[letter] = true
	}
	if got := bag.Remaining(); got != before {
		t.Errorf("Remaining() = %d after PickForOrder calls, want unchanged %d", got, before)
	}
}

func TestPickForOrderExhausted(t *testing.T) {
	alphabet := testAlphabet(t)
	ts, err := NewTileSet(alphabet, map[rune]int{'a': 3})
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	bag := NewTileBag(alphabet, ts)
	if _, err := bag.PickForOrder(); err != nil {
		t.Fatalf("PickForOrder: %v", err)
	}
	_, err = bag.PickForOrder()
	if err == nil {
		t.Fatal("expected PickForOrder to exhaust after the single distinct letter is drawn")
	}
	if eerr, ok := err.(*EngineError); !ok || eerr.Kind != KindExhausted {
		t.Errorf("got error %v, want KindExhausted", err)
	}
}

func TestExchangeAllowedThreshold(t *testing.T) {
	alphabet := testAlphabet(t)
	ts, err := NewTileSet(alphabet, map[rune]int{'a': RackSize - 1})
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	bag := NewTileBag(alphabet, ts)
	if bag.ExchangeAllowed() {
		t.Errorf("ExchangeAllowed() = true with %d tiles left, want false (below rack size %d)", bag.Remaining(), RackSize)
	}
	tile, err := NewTile(alphabet, 'a')
	if err != nil {
		t.Fatalf("NewTile: %v", err)
	}
	bag.PutBack(tile)
	if !bag.ExchangeAllowed() {
		t.Errorf("ExchangeAllowed() = false with %d tiles left, want true", bag.Remaining())
	}
}
