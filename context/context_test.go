package context

import (
	"testing"

	"github.com/sapienskid/akshar-ime/wordstore"
)

func TestRerankNoBoostWithEmptyWindow(t *testing.T) {
	m := New()
	suggestions := []Suggestion{{WordId: 1, Score: 5}, {WordId: 2, Score: 9}}
	m.Rerank(suggestions)
	if suggestions[0].WordId != 2 || suggestions[0].Score != 9 {
		t.Fatalf("Rerank with empty window reordered/boosted unexpectedly: %+v", suggestions)
	}
}

func TestRerankFirstOccurrenceIsZeroBoost(t *testing.T) {
	m := New()
	m.AddWord(wordstore.WordId(10)) // "राम" confirmed
	m.AddWord(wordstore.WordId(20)) // "सीता" confirmed, creates bigram (10,20) count 1
	m.AddWord(wordstore.WordId(10)) // back of window is 10 again, so (10,20) is consulted

	suggestions := []Suggestion{{WordId: 20, Score: 0}}
	m.Rerank(suggestions)
	if suggestions[0].Score != 0 {
		t.Fatalf("first bigram occurrence should yield 0 boost (floor(log2(1)*10)=0), got %d", suggestions[0].Score)
	}
}

func TestRerankSecondOccurrenceBoostsByTen(t *testing.T) {
	m := New()
	m.AddWord(wordstore.WordId(10))
	m.AddWord(wordstore.WordId(20)) // bigram (10,20) count 1
	m.AddWord(wordstore.WordId(10))
	m.AddWord(wordstore.WordId(20)) // bigram (10,20) count 2
	m.AddWord(wordstore.WordId(10)) // back of window is 10 again

	suggestions := []Suggestion{{WordId: 20, Score: 0}}
	m.Rerank(suggestions)
	if suggestions[0].Score != 10 {
		t.Fatalf("second bigram occurrence should yield boost 10 (floor(log2(2)*10)=10), got %d", suggestions[0].Score)
	}
}

func TestRerankSortsDescendingAfterBoost(t *testing.T) {
	m := New()
	m.AddWord(wordstore.WordId(1))
	for i := 0; i < 8; i++ {
		m.AddWord(wordstore.WordId(2))
		m.AddWord(wordstore.WordId(1))
	}
	// bigram (1,2) has occurred many times; give 2 a lower base score than 3
	suggestions := []Suggestion{
		{WordId: 3, Score: 15},
		{WordId: 2, Score: 5},
	}
	m.Rerank(suggestions)
	if suggestions[0].WordId != 2 {
		t.Fatalf("expected WordId 2 to rank first after boost, got %+v", suggestions)
	}
}

func TestWindowEvictsOldestBeyondCapacity(t *testing.T) {
	m := NewWithWindowSize(2)
	m.AddWord(wordstore.WordId(1))
	m.AddWord(wordstore.WordId(2))
	m.AddWord(wordstore.WordId(3)) // evicts 1; window is now [2, 3]

	if len(m.window) != 2 || m.window[0] != 2 || m.window[1] != 3 {
		t.Fatalf("window = %v, want [2 3]", m.window)
	}

	suggestions := []Suggestion{{WordId: 99, Score: 0}}
	// back of window is 3; WordId 99 has no bigram with it, so no boost applies
	m.Rerank(suggestions)
	if suggestions[0].Score != 0 {
		t.Fatalf("unexpected boost from unrelated WordId: %+v", suggestions)
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	m := New()
	m.AddWord(wordstore.WordId(1))
	m.AddWord(wordstore.WordId(2))
	m.AddWord(wordstore.WordId(1))
	m.AddWord(wordstore.WordId(2)) // bigram (1,2) count 2
	m.AddWord(wordstore.WordId(1)) // back of window is 1

	data, err := m.MarshalMsgpack()
	if err != nil {
		t.Fatalf("MarshalMsgpack: %v", err)
	}
	loaded := New()
	if err := loaded.UnmarshalMsgpack(data); err != nil {
		t.Fatalf("UnmarshalMsgpack: %v", err)
	}

	suggestions := []Suggestion{{WordId: 2, Score: 0}}
	loaded.Rerank(suggestions)
	if suggestions[0].Score != 10 {
		t.Fatalf("round trip lost bigram boost, got score %d", suggestions[0].Score)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	m := New()
	m.AddWord(wordstore.WordId(1))
	m.AddWord(wordstore.WordId(2))
	m.AddWord(wordstore.WordId(3))
	m.AddWord(wordstore.WordId(1))
	m.AddWord(wordstore.WordId(2))

	first, err := m.MarshalMsgpack()
	if err != nil {
		t.Fatalf("MarshalMsgpack: %v", err)
	}
	second, err := m.MarshalMsgpack()
	if err != nil {
		t.Fatalf("MarshalMsgpack: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("MarshalMsgpack is not deterministic across repeated calls")
	}
}
